// Package cpu implements the MOS 6502 as used in the Apple 1: the 151
// official opcodes across 13 addressing modes, with the NMOS BCD
// arithmetic, page-crossing/branch-taken cycle penalties, and the
// Break/Unused status bit push-pop rules. No unofficial opcodes and no
// IRQ/NMI lines are implemented; BRK's software vector is the only
// interrupt path.
package cpu

import (
	"fmt"

	"github.com/schembri/apple1e/memory"
)

// Status register bit masks, MSB to LSB: N V U B D I Z C.
const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_UNUSED    = uint8(0x20) // Always 1 in the live register.
	P_BREAK     = uint8(0x10) // Only meaningful in a pushed copy.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// Break and reset vectors.
const (
	ResetVector = uint16(0xFFFC)
	BreakVector = uint16(0xFFFE)
)

// IllegalOpcode is returned by Step when it fetches an opcode byte with
// no assigned handler. The CPU is halted and will re-raise this same
// error on any further Step call.
type IllegalOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Chip is a single MOS 6502 register file and instruction interpreter
// running against a memory.Fabric. It is instruction-stepped: Step()
// decodes and fully executes exactly one instruction and returns the
// number of cycles it took.
type Chip struct {
	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	S  uint8  // Stack pointer; the stack lives at 0x0100 | S.
	P  uint8  // Status register.
	PC uint16 // Program counter.

	mem *memory.Fabric

	halted     bool
	haltReason error
}

// Init creates a Chip wired to mem and powers it on via Reset.
func Init(mem *memory.Fabric) *Chip {
	c := &Chip{mem: mem}
	c.Reset()
	return c
}

// Reset loads PC from the reset vector and sets the registers to their
// documented power-on/reset state: A=X=Y=0, S=0xFF, P=0x20 (only the
// Unused bit set). It is idempotent: calling it twice leaves the CPU in
// the same state as calling it once.
func (c *Chip) Reset() {
	c.mem.ResetVector()
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFF
	c.P = P_UNUSED
	c.halted = false
	c.haltReason = nil
	lo := c.mem.Read(ResetVector)
	hi := c.mem.Read(ResetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Step decodes and executes exactly one instruction starting at PC,
// returning the number of cycles it consumed. An opcode byte with no
// assigned handler returns IllegalOpcode and halts the CPU; every
// subsequent Step call returns the same error without altering state
// further.
func (c *Chip) Step() (int, error) {
	if c.halted {
		return 0, c.haltReason
	}

	pc := c.PC
	op := c.mem.Read(pc)
	entry := &opcodeTable[op]
	if entry.fn == nil {
		err := IllegalOpcode{Opcode: op, PC: pc}
		c.halted = true
		c.haltReason = err
		return 0, err
	}

	var o0, o1 uint8
	if entry.length >= 2 {
		o0 = c.mem.Read(pc + 1)
	}
	if entry.length >= 3 {
		o1 = c.mem.Read(pc + 2)
	}
	c.PC = pc + uint16(entry.length)

	extra := entry.fn(c, o0, o1)
	return int(entry.cycles) + extra, nil
}

// push writes v to the stack and decrements S, wrapping within the
// page-one stack bank at 0x0100-0x01FF.
func (c *Chip) push(v uint8) {
	c.mem.Write(0x0100|uint16(c.S), v)
	c.S--
}

// pop increments S and reads the byte now on top of the stack.
func (c *Chip) pop() uint8 {
	c.S++
	return c.mem.Read(0x0100 | uint16(c.S))
}

// push16 pushes v high byte first, then low byte, matching JSR/BRK
// ordering so RTS/RTI (which pop low then high) read it back correctly.
func (c *Chip) push16(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

// pop16 pops a low byte then a high byte and recombines them.
func (c *Chip) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}
