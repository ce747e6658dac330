package cpu

// addrMode enumerates the 13 addressing modes used across the defined
// opcode set. Implied/Accumulator instructions take no operand bytes
// and are dispatched directly rather than through these helpers.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// pageCrossed reports whether a and b fall in different 256 byte pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// effAddr computes the effective address for a given addressing mode
// and operand bytes. It also reports whether a read from that address
// crossed a page boundary relative to the unindexed base, for modes
// where that matters (AbsoluteX, AbsoluteY, IndirectY); other modes
// always report false since stores, RMWs and the remaining read modes
// never carry the page-crossing penalty.
func (c *Chip) effAddr(m addrMode, o0, o1 uint8) (addr uint16, crossed bool) {
	switch m {
	case modeZeroPage:
		return uint16(o0), false
	case modeZeroPageX:
		return uint16(o0 + c.X), false
	case modeZeroPageY:
		return uint16(o0 + c.Y), false
	case modeAbsolute:
		return uint16(o1)<<8 | uint16(o0), false
	case modeAbsoluteX:
		base := uint16(o1)<<8 | uint16(o0)
		addr = base + uint16(c.X)
		return addr, pageCrossed(base, addr)
	case modeAbsoluteY:
		base := uint16(o1)<<8 | uint16(o0)
		addr = base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case modeIndirect:
		// Reproduces the famous 6502 page-wrap bug: the high byte is
		// fetched from (ptr & 0xFF00) | ((ptr+1) & 0xFF), not from the
		// next sequential address when ptr's low byte is 0xFF.
		ptr := uint16(o1)<<8 | uint16(o0)
		lo := c.mem.Read(ptr)
		hi := c.mem.Read((ptr & 0xFF00) | ((ptr + 1) & 0xFF))
		return uint16(hi)<<8 | uint16(lo), false
	case modeIndirectX:
		ptr := o0 + c.X
		lo := c.mem.Read(uint16(ptr))
		hi := c.mem.Read(uint16(ptr + 1))
		return uint16(hi)<<8 | uint16(lo), false
	case modeIndirectY:
		lo := c.mem.Read(uint16(o0))
		hi := c.mem.Read(uint16(o0 + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	}
	return 0, false
}

// readOperand returns the value an instruction should operate on for
// the given mode along with whether fetching it crossed a page, for
// read instructions (LDA/AND/ORA/EOR/ADC/SBC/CMP/CPX/CPY/BIT/LDX/LDY).
// Immediate mode returns the operand byte itself without touching
// memory.
func (c *Chip) readOperand(m addrMode, o0, o1 uint8) (val uint8, crossed bool) {
	if m == modeImmediate {
		return o0, false
	}
	addr, crossed := c.effAddr(m, o0, o1)
	return c.mem.Read(addr), crossed
}
