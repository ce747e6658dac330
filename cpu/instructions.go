package cpu

// opFunc is the handler contract: given the instruction's operand bytes
// (zero-filled if unused), execute it and return the cycles to add on
// top of the opcode table's base cost (page-crossing and decimal-mode
// extras). Registers, flags and PC jumps are the handler's
// responsibility; the dispatcher in Chip.Step only manages PC advance
// and operand fetch.
type opFunc func(c *Chip, o0, o1 uint8) int

// load builds a handler for the LDA/LDX/LDY/AND/ORA/EOR/ADC/SBC/CMP/
// CPX/CPY/BIT family: fetch a value per the addressing mode, apply the
// instruction semantics, and add one cycle if the fetch crossed a page
// (only meaningful for AbsoluteX/AbsoluteY/IndirectY; effAddr reports
// false for every other mode).
func load(mode addrMode, apply func(c *Chip, val uint8) int) opFunc {
	return func(c *Chip, o0, o1 uint8) int {
		val, crossed := c.readOperand(mode, o0, o1)
		extra := apply(c, val)
		if crossed {
			extra++
		}
		return extra
	}
}

// store builds a handler for STA/STX/STY: stores never take a
// page-crossing penalty, regardless of addressing mode.
func store(mode addrMode, reg func(c *Chip) uint8) opFunc {
	return func(c *Chip, o0, o1 uint8) int {
		addr, _ := c.effAddr(mode, o0, o1)
		c.mem.Write(addr, reg(c))
		return 0
	}
}

// rmwMem builds a handler for the memory forms of ASL/LSR/ROL/ROR/INC/
// DEC: read-modify-write instructions have a fixed cost baked into the
// opcode table and never take a page-crossing penalty.
func rmwMem(mode addrMode, op func(c *Chip, v uint8) uint8) opFunc {
	return func(c *Chip, o0, o1 uint8) int {
		addr, _ := c.effAddr(mode, o0, o1)
		v := c.mem.Read(addr)
		c.mem.Write(addr, op(c, v))
		return 0
	}
}

// rmwAcc builds a handler for the accumulator forms of ASL/LSR/ROL/ROR.
func rmwAcc(op func(c *Chip, v uint8) uint8) opFunc {
	return func(c *Chip, o0, o1 uint8) int {
		c.A = op(c, c.A)
		return 0
	}
}

// implied builds a handler for zero-operand instructions: register
// transfers, flag clear/set, INX/INY/DEX/DEY and NOP.
func implied(fn func(c *Chip)) opFunc {
	return func(c *Chip, o0, o1 uint8) int {
		fn(c)
		return 0
	}
}

// branch builds a handler for the eight conditional branches. want is
// the flag state (mask bit set or clear) that causes the branch to be
// taken. The branch offset is computed from the PC as it stands after
// the 2-byte branch instruction has already been consumed (Step
// advances PC before invoking the handler).
func branch(mask uint8, want bool) opFunc {
	return func(c *Chip, o0, o1 uint8) int {
		taken := (c.P&mask != 0) == want
		if !taken {
			return 0
		}
		old := c.PC
		offset := int8(o0)
		next := uint16(int32(old) + int32(offset))
		c.PC = next
		extra := 1
		if pageCrossed(old, next) {
			extra++
		}
		return extra
	}
}

// --- Load/read family semantics ---

func applyLDA(c *Chip, v uint8) int { c.A = v; c.setZN(v); return 0 }
func applyLDX(c *Chip, v uint8) int { c.X = v; c.setZN(v); return 0 }
func applyLDY(c *Chip, v uint8) int { c.Y = v; c.setZN(v); return 0 }

func applyAND(c *Chip, v uint8) int { c.A &= v; c.setZN(c.A); return 0 }
func applyORA(c *Chip, v uint8) int { c.A |= v; c.setZN(c.A); return 0 }
func applyEOR(c *Chip, v uint8) int { c.A ^= v; c.setZN(c.A); return 0 }

func applyBIT(c *Chip, v uint8) int {
	c.P &^= P_ZERO
	if c.A&v == 0 {
		c.P |= P_ZERO
	}
	c.P &^= P_NEGATIVE | P_OVERFLOW
	if v&P_NEGATIVE != 0 {
		c.P |= P_NEGATIVE
	}
	if v&P_OVERFLOW != 0 {
		c.P |= P_OVERFLOW
	}
	return 0
}

// adc performs binary ADC: r = A + M + C_in.
func (c *Chip) adc(v uint8) {
	carry := c.P & P_CARRY
	sum := uint16(c.A) + uint16(v) + uint16(carry)
	res := uint8(sum)
	c.setOverflow(c.A, v, res)
	c.setCarry(sum)
	c.A = res
	c.setZN(c.A)
}

// adcDecimal performs BCD ADC per the nibble-by-nibble algorithm; NZ
// are set from the binary-style result and V is always cleared, which
// is the simplified rule this implementation standardises on.
func (c *Chip) adcDecimal(v uint8) {
	carry := c.P & P_CARRY
	lo := (c.A & 0x0F) + (v & 0x0F) + carry
	hiCarry := uint8(0)
	if lo > 9 {
		lo -= 10
		hiCarry = 1
	}
	hi := (c.A >> 4) + (v >> 4) + hiCarry
	outCarry := false
	if hi > 9 {
		hi -= 10
		outCarry = true
	}
	c.A = (hi << 4) | (lo & 0x0F)
	c.P &^= P_CARRY
	if outCarry {
		c.P |= P_CARRY
	}
	c.P &^= P_OVERFLOW
	c.setZN(c.A)
}

func applyADC(c *Chip, v uint8) int {
	if c.P&P_DECIMAL != 0 {
		c.adcDecimal(v)
		return 1
	}
	c.adc(v)
	return 0
}

func applySBC(c *Chip, v uint8) int {
	if c.P&P_DECIMAL != 0 {
		carry := c.P & P_CARRY
		lo := int(c.A&0x0F) - int(v&0x0F) - int(1-carry)
		hiBorrow := uint8(0)
		if lo < 0 {
			lo += 10
			hiBorrow = 1
		}
		hi := int(c.A>>4) - int(v>>4) - int(hiBorrow)
		outCarry := true
		if hi < 0 {
			hi += 10
			outCarry = false
		}
		c.A = (uint8(hi) << 4) | (uint8(lo) & 0x0F)
		c.P &^= P_CARRY
		if outCarry {
			c.P |= P_CARRY
		}
		c.P &^= P_OVERFLOW
		c.setZN(c.A)
		return 1
	}
	c.adc(v ^ 0xFF)
	return 0
}

func (c *Chip) compare(reg, val uint8) {
	c.setCarry(uint16(reg) + uint16(^val) + 1)
	c.setZN(reg - val)
}

func applyCMP(c *Chip, v uint8) int { c.compare(c.A, v); return 0 }
func applyCPX(c *Chip, v uint8) int { c.compare(c.X, v); return 0 }
func applyCPY(c *Chip, v uint8) int { c.compare(c.Y, v); return 0 }

// --- RMW family semantics ---

func opASL(c *Chip, v uint8) uint8 {
	c.setCarry(uint16(v) << 1)
	res := v << 1
	c.setZN(res)
	return res
}

func opLSR(c *Chip, v uint8) uint8 {
	c.P &^= P_CARRY
	if v&0x01 != 0 {
		c.P |= P_CARRY
	}
	res := v >> 1
	c.setZN(res)
	return res
}

func opROL(c *Chip, v uint8) uint8 {
	carryIn := c.P & P_CARRY
	c.setCarry(uint16(v) << 1)
	res := (v << 1) | carryIn
	c.setZN(res)
	return res
}

func opROR(c *Chip, v uint8) uint8 {
	carryIn := (c.P & P_CARRY) << 7
	newCarry := v & 0x01
	res := (v >> 1) | carryIn
	c.P &^= P_CARRY
	if newCarry != 0 {
		c.P |= P_CARRY
	}
	c.setZN(res)
	return res
}

func opINC(c *Chip, v uint8) uint8 { res := v + 1; c.setZN(res); return res }
func opDEC(c *Chip, v uint8) uint8 { res := v - 1; c.setZN(res); return res }

// --- Implied/register semantics ---

func loadReg(dst *uint8) func(c *Chip) {
	return func(c *Chip) {
		c.setZN(*dst)
	}
}

func transfer(get func(c *Chip) uint8, set func(c *Chip, v uint8)) func(c *Chip) {
	return func(c *Chip) {
		v := get(c)
		set(c, v)
		c.setZN(v)
	}
}

func iINX(c *Chip) { c.X++; c.setZN(c.X) }
func iINY(c *Chip) { c.Y++; c.setZN(c.Y) }
func iDEX(c *Chip) { c.X--; c.setZN(c.X) }
func iDEY(c *Chip) { c.Y--; c.setZN(c.Y) }
func iNOP(c *Chip) {}

func iCLC(c *Chip) { c.P &^= P_CARRY }
func iCLD(c *Chip) { c.P &^= P_DECIMAL }
func iCLI(c *Chip) { c.P &^= P_INTERRUPT }
func iCLV(c *Chip) { c.P &^= P_OVERFLOW }
func iSEC(c *Chip) { c.P |= P_CARRY }
func iSED(c *Chip) { c.P |= P_DECIMAL }
func iSEI(c *Chip) { c.P |= P_INTERRUPT }

func iTXS(c *Chip) { c.S = c.X }

// --- Stack instructions ---

// iPHA pushes A onto the stack.
func iPHA(c *Chip, o0, o1 uint8) int {
	c.push(c.A)
	return 0
}

// iPHP pushes P with the Break and Unused bits forced set, per the
// rule that only a pushed copy of P ever carries a meaningful B bit.
func iPHP(c *Chip, o0, o1 uint8) int {
	c.push(c.P | P_BREAK | P_UNUSED)
	return 0
}

// iPLA pops into A and sets NZ from the result.
func iPLA(c *Chip, o0, o1 uint8) int {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

// iPLP pops P, clearing the Break bit and forcing the Unused bit set.
func iPLP(c *Chip, o0, o1 uint8) int {
	v := c.pop()
	c.P = (v &^ P_BREAK) | P_UNUSED
	return 0
}

// --- Control flow: JMP/JSR/RTS/RTI/BRK ---

func iJMP(c *Chip, o0, o1 uint8) int {
	addr, _ := c.effAddr(modeAbsolute, o0, o1)
	c.PC = addr
	return 0
}

func iJMPIndirect(c *Chip, o0, o1 uint8) int {
	addr, _ := c.effAddr(modeIndirect, o0, o1)
	c.PC = addr
	return 0
}

// iJSR pushes the address of the last byte of the JSR instruction
// itself (PC-1 after Step's advance) so RTS can add one and resume
// just past it, then jumps to the target.
func iJSR(c *Chip, o0, o1 uint8) int {
	addr, _ := c.effAddr(modeAbsolute, o0, o1)
	c.push16(c.PC - 1)
	c.PC = addr
	return 0
}

// iRTS pops the return address and adds one to resume past the JSR.
func iRTS(c *Chip, o0, o1 uint8) int {
	c.PC = c.pop16() + 1
	return 0
}

// iRTI pops P (as PLP does) then PC, with no +1 adjustment.
func iRTI(c *Chip, o0, o1 uint8) int {
	v := c.pop()
	c.P = (v &^ P_BREAK) | P_UNUSED
	c.PC = c.pop16()
	return 0
}

// iBRK pushes PC+1, pushes P with B and U set, sets the interrupt
// disable flag, then loads PC from the break vector. Step has already
// advanced PC past the single opcode byte (BRK's operand byte is
// conventionally a padding byte skipped over, per the 6502 reference),
// so the pushed value is the opcode address plus 2.
func iBRK(c *Chip, o0, o1 uint8) int {
	c.push16(c.PC + 1)
	c.push(c.P | P_BREAK | P_UNUSED)
	c.P |= P_INTERRUPT
	lo := c.mem.Read(BreakVector)
	hi := c.mem.Read(BreakVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}
