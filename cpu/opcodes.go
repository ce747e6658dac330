package cpu

// opcode is the decoded table entry for one of the 256 possible opcode
// bytes: the instruction's length in bytes (including the opcode byte
// itself) and base cycle cost, plus the handler that executes it. A
// zero-value fn marks an opcode byte with no assigned handler, which
// Step reports as IllegalOpcode. The table is built once in init and
// never mutated afterward.
type opcode struct {
	length uint8
	cycles uint8
	fn     opFunc
}

var opcodeTable [256]opcode

// set registers one opcode byte's table entry. Called only from init.
func set(b uint8, length, cycles uint8, fn opFunc) {
	opcodeTable[b] = opcode{length: length, cycles: cycles, fn: fn}
}

func init() {
	// ADC
	set(0x69, 2, 2, load(modeImmediate, applyADC))
	set(0x65, 2, 3, load(modeZeroPage, applyADC))
	set(0x75, 2, 4, load(modeZeroPageX, applyADC))
	set(0x6D, 3, 4, load(modeAbsolute, applyADC))
	set(0x7D, 3, 4, load(modeAbsoluteX, applyADC))
	set(0x79, 3, 4, load(modeAbsoluteY, applyADC))
	set(0x61, 2, 6, load(modeIndirectX, applyADC))
	set(0x71, 2, 5, load(modeIndirectY, applyADC))

	// AND
	set(0x29, 2, 2, load(modeImmediate, applyAND))
	set(0x25, 2, 3, load(modeZeroPage, applyAND))
	set(0x35, 2, 4, load(modeZeroPageX, applyAND))
	set(0x2D, 3, 4, load(modeAbsolute, applyAND))
	set(0x3D, 3, 4, load(modeAbsoluteX, applyAND))
	set(0x39, 3, 4, load(modeAbsoluteY, applyAND))
	set(0x21, 2, 6, load(modeIndirectX, applyAND))
	set(0x31, 2, 5, load(modeIndirectY, applyAND))

	// ASL
	set(0x0A, 1, 2, rmwAcc(opASL))
	set(0x06, 2, 5, rmwMem(modeZeroPage, opASL))
	set(0x16, 2, 6, rmwMem(modeZeroPageX, opASL))
	set(0x0E, 3, 6, rmwMem(modeAbsolute, opASL))
	set(0x1E, 3, 7, rmwMem(modeAbsoluteX, opASL))

	// Branches
	set(0x90, 2, 2, branch(P_CARRY, false))    // BCC
	set(0xB0, 2, 2, branch(P_CARRY, true))     // BCS
	set(0xF0, 2, 2, branch(P_ZERO, true))      // BEQ
	set(0x30, 2, 2, branch(P_NEGATIVE, true))  // BMI
	set(0xD0, 2, 2, branch(P_ZERO, false))     // BNE
	set(0x10, 2, 2, branch(P_NEGATIVE, false)) // BPL
	set(0x50, 2, 2, branch(P_OVERFLOW, false)) // BVC
	set(0x70, 2, 2, branch(P_OVERFLOW, true))  // BVS

	// BIT
	set(0x24, 2, 3, load(modeZeroPage, applyBIT))
	set(0x2C, 3, 4, load(modeAbsolute, applyBIT))

	// BRK
	set(0x00, 1, 7, iBRK)

	// Flag clear/set
	set(0x18, 1, 2, implied(iCLC))
	set(0xD8, 1, 2, implied(iCLD))
	set(0x58, 1, 2, implied(iCLI))
	set(0xB8, 1, 2, implied(iCLV))
	set(0x38, 1, 2, implied(iSEC))
	set(0xF8, 1, 2, implied(iSED))
	set(0x78, 1, 2, implied(iSEI))

	// CMP
	set(0xC9, 2, 2, load(modeImmediate, applyCMP))
	set(0xC5, 2, 3, load(modeZeroPage, applyCMP))
	set(0xD5, 2, 4, load(modeZeroPageX, applyCMP))
	set(0xCD, 3, 4, load(modeAbsolute, applyCMP))
	set(0xDD, 3, 4, load(modeAbsoluteX, applyCMP))
	set(0xD9, 3, 4, load(modeAbsoluteY, applyCMP))
	set(0xC1, 2, 6, load(modeIndirectX, applyCMP))
	set(0xD1, 2, 5, load(modeIndirectY, applyCMP))

	// CPX / CPY
	set(0xE0, 2, 2, load(modeImmediate, applyCPX))
	set(0xE4, 2, 3, load(modeZeroPage, applyCPX))
	set(0xEC, 3, 4, load(modeAbsolute, applyCPX))
	set(0xC0, 2, 2, load(modeImmediate, applyCPY))
	set(0xC4, 2, 3, load(modeZeroPage, applyCPY))
	set(0xCC, 3, 4, load(modeAbsolute, applyCPY))

	// DEC
	set(0xC6, 2, 5, rmwMem(modeZeroPage, opDEC))
	set(0xD6, 2, 6, rmwMem(modeZeroPageX, opDEC))
	set(0xCE, 3, 6, rmwMem(modeAbsolute, opDEC))
	set(0xDE, 3, 7, rmwMem(modeAbsoluteX, opDEC))

	// DEX / DEY / INX / INY
	set(0xCA, 1, 2, implied(iDEX))
	set(0x88, 1, 2, implied(iDEY))
	set(0xE8, 1, 2, implied(iINX))
	set(0xC8, 1, 2, implied(iINY))

	// EOR
	set(0x49, 2, 2, load(modeImmediate, applyEOR))
	set(0x45, 2, 3, load(modeZeroPage, applyEOR))
	set(0x55, 2, 4, load(modeZeroPageX, applyEOR))
	set(0x4D, 3, 4, load(modeAbsolute, applyEOR))
	set(0x5D, 3, 4, load(modeAbsoluteX, applyEOR))
	set(0x59, 3, 4, load(modeAbsoluteY, applyEOR))
	set(0x41, 2, 6, load(modeIndirectX, applyEOR))
	set(0x51, 2, 5, load(modeIndirectY, applyEOR))

	// INC
	set(0xE6, 2, 5, rmwMem(modeZeroPage, opINC))
	set(0xF6, 2, 6, rmwMem(modeZeroPageX, opINC))
	set(0xEE, 3, 6, rmwMem(modeAbsolute, opINC))
	set(0xFE, 3, 7, rmwMem(modeAbsoluteX, opINC))

	// JMP / JSR
	set(0x4C, 3, 3, iJMP)
	set(0x6C, 3, 5, iJMPIndirect)
	set(0x20, 3, 6, iJSR)

	// LDA
	set(0xA9, 2, 2, load(modeImmediate, applyLDA))
	set(0xA5, 2, 3, load(modeZeroPage, applyLDA))
	set(0xB5, 2, 4, load(modeZeroPageX, applyLDA))
	set(0xAD, 3, 4, load(modeAbsolute, applyLDA))
	set(0xBD, 3, 4, load(modeAbsoluteX, applyLDA))
	set(0xB9, 3, 4, load(modeAbsoluteY, applyLDA))
	set(0xA1, 2, 6, load(modeIndirectX, applyLDA))
	set(0xB1, 2, 5, load(modeIndirectY, applyLDA))

	// LDX
	set(0xA2, 2, 2, load(modeImmediate, applyLDX))
	set(0xA6, 2, 3, load(modeZeroPage, applyLDX))
	set(0xB6, 2, 4, load(modeZeroPageY, applyLDX))
	set(0xAE, 3, 4, load(modeAbsolute, applyLDX))
	set(0xBE, 3, 4, load(modeAbsoluteY, applyLDX))

	// LDY
	set(0xA0, 2, 2, load(modeImmediate, applyLDY))
	set(0xA4, 2, 3, load(modeZeroPage, applyLDY))
	set(0xB4, 2, 4, load(modeZeroPageX, applyLDY))
	set(0xAC, 3, 4, load(modeAbsolute, applyLDY))
	set(0xBC, 3, 4, load(modeAbsoluteX, applyLDY))

	// LSR
	set(0x4A, 1, 2, rmwAcc(opLSR))
	set(0x46, 2, 5, rmwMem(modeZeroPage, opLSR))
	set(0x56, 2, 6, rmwMem(modeZeroPageX, opLSR))
	set(0x4E, 3, 6, rmwMem(modeAbsolute, opLSR))
	set(0x5E, 3, 7, rmwMem(modeAbsoluteX, opLSR))

	// NOP
	set(0xEA, 1, 2, implied(iNOP))

	// ORA
	set(0x09, 2, 2, load(modeImmediate, applyORA))
	set(0x05, 2, 3, load(modeZeroPage, applyORA))
	set(0x15, 2, 4, load(modeZeroPageX, applyORA))
	set(0x0D, 3, 4, load(modeAbsolute, applyORA))
	set(0x1D, 3, 4, load(modeAbsoluteX, applyORA))
	set(0x19, 3, 4, load(modeAbsoluteY, applyORA))
	set(0x01, 2, 6, load(modeIndirectX, applyORA))
	set(0x11, 2, 5, load(modeIndirectY, applyORA))

	// Stack
	set(0x48, 1, 3, iPHA)
	set(0x08, 1, 3, iPHP)
	set(0x68, 1, 4, iPLA)
	set(0x28, 1, 4, iPLP)

	// ROL
	set(0x2A, 1, 2, rmwAcc(opROL))
	set(0x26, 2, 5, rmwMem(modeZeroPage, opROL))
	set(0x36, 2, 6, rmwMem(modeZeroPageX, opROL))
	set(0x2E, 3, 6, rmwMem(modeAbsolute, opROL))
	set(0x3E, 3, 7, rmwMem(modeAbsoluteX, opROL))

	// ROR
	set(0x6A, 1, 2, rmwAcc(opROR))
	set(0x66, 2, 5, rmwMem(modeZeroPage, opROR))
	set(0x76, 2, 6, rmwMem(modeZeroPageX, opROR))
	set(0x6E, 3, 6, rmwMem(modeAbsolute, opROR))
	set(0x7E, 3, 7, rmwMem(modeAbsoluteX, opROR))

	// RTI / RTS
	set(0x40, 1, 6, iRTI)
	set(0x60, 1, 6, iRTS)

	// SBC
	set(0xE9, 2, 2, load(modeImmediate, applySBC))
	set(0xE5, 2, 3, load(modeZeroPage, applySBC))
	set(0xF5, 2, 4, load(modeZeroPageX, applySBC))
	set(0xED, 3, 4, load(modeAbsolute, applySBC))
	set(0xFD, 3, 4, load(modeAbsoluteX, applySBC))
	set(0xF9, 3, 4, load(modeAbsoluteY, applySBC))
	set(0xE1, 2, 6, load(modeIndirectX, applySBC))
	set(0xF1, 2, 5, load(modeIndirectY, applySBC))

	// STA
	set(0x85, 2, 3, store(modeZeroPage, func(c *Chip) uint8 { return c.A }))
	set(0x95, 2, 4, store(modeZeroPageX, func(c *Chip) uint8 { return c.A }))
	set(0x8D, 3, 4, store(modeAbsolute, func(c *Chip) uint8 { return c.A }))
	set(0x9D, 3, 5, store(modeAbsoluteX, func(c *Chip) uint8 { return c.A }))
	set(0x99, 3, 5, store(modeAbsoluteY, func(c *Chip) uint8 { return c.A }))
	set(0x81, 2, 6, store(modeIndirectX, func(c *Chip) uint8 { return c.A }))
	set(0x91, 2, 6, store(modeIndirectY, func(c *Chip) uint8 { return c.A }))

	// STX / STY
	set(0x86, 2, 3, store(modeZeroPage, func(c *Chip) uint8 { return c.X }))
	set(0x96, 2, 4, store(modeZeroPageY, func(c *Chip) uint8 { return c.X }))
	set(0x8E, 3, 4, store(modeAbsolute, func(c *Chip) uint8 { return c.X }))
	set(0x84, 2, 3, store(modeZeroPage, func(c *Chip) uint8 { return c.Y }))
	set(0x94, 2, 4, store(modeZeroPageX, func(c *Chip) uint8 { return c.Y }))
	set(0x8C, 3, 4, store(modeAbsolute, func(c *Chip) uint8 { return c.Y }))

	// Register transfers
	set(0xAA, 1, 2, implied(transfer(func(c *Chip) uint8 { return c.A }, func(c *Chip, v uint8) { c.X = v }))) // TAX
	set(0xA8, 1, 2, implied(transfer(func(c *Chip) uint8 { return c.A }, func(c *Chip, v uint8) { c.Y = v }))) // TAY
	set(0xBA, 1, 2, implied(transfer(func(c *Chip) uint8 { return c.S }, func(c *Chip, v uint8) { c.X = v }))) // TSX
	set(0x8A, 1, 2, implied(transfer(func(c *Chip) uint8 { return c.X }, func(c *Chip, v uint8) { c.A = v }))) // TXA
	set(0x98, 1, 2, implied(transfer(func(c *Chip) uint8 { return c.Y }, func(c *Chip, v uint8) { c.A = v }))) // TYA
	set(0x9A, 1, 2, implied(iTXS))                                                                             // TXS, does not affect flags
}
