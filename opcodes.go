package c64core

// This file implements the full legal 6502/6510 instruction set as
// per-mnemonic executors, and builds the 256-entry dispatch table that
// maps each opcode byte to its addressing mode, base cycle count, and
// executor. Illegal/undocumented opcodes live in opcodes_illegal.go.

func (c *CPU) storeResult(addr uint16, mode addrMode, v byte) {
	if mode == modeAcc {
		c.A = v
		return
	}
	c.sys.WriteByte(addr, v)
}

func opADC(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	if c.getFlag(flagD) {
		adcDecimal(c, v)
		return
	}
	sum := int(c.A) + int(v)
	if c.getFlag(flagC) {
		sum++
	}
	result := byte(sum)
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagV, (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setNZ(c.A)
}

// adcDecimal implements BCD addition per the documented 6502 decimal-mode
// algorithm: per-nibble correction after a binary add. Carry, N and Z are
// computed from the corrected result; V is computed from the uncorrected
// binary sum. (sbcDecimal, by contrast, takes C, V, N and Z all from the
// binary difference and corrects only the accumulator value.)
func adcDecimal(c *CPU, v byte) {
	carryIn := byte(0)
	if c.getFlag(flagC) {
		carryIn = 1
	}
	lo := int(c.A&0x0F) + int(v&0x0F) + int(carryIn)
	hi := int(c.A>>4) + int(v>>4)
	if lo > 9 {
		lo -= 10
		hi++
	}
	binSum := int(c.A) + int(v) + int(carryIn)
	c.setFlag(flagV, (c.A^v)&0x80 == 0 && (c.A^byte(binSum))&0x80 != 0)
	if hi > 9 {
		hi -= 10
		c.setFlag(flagC, true)
	} else {
		c.setFlag(flagC, false)
	}
	c.A = byte(hi<<4) | byte(lo&0x0F)
	c.setNZ(c.A)
}

func opSBC(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	if c.getFlag(flagD) {
		sbcDecimal(c, v)
		return
	}
	borrow := byte(1)
	if c.getFlag(flagC) {
		borrow = 0
	}
	diff := int(c.A) - int(v) - int(borrow)
	result := byte(diff)
	c.setFlag(flagC, diff >= 0)
	c.setFlag(flagV, (c.A^v)&0x80 != 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setNZ(c.A)
}

func sbcDecimal(c *CPU, v byte) {
	borrow := byte(1)
	if c.getFlag(flagC) {
		borrow = 0
	}
	binDiff := int(c.A) - int(v) - int(borrow)
	c.setFlag(flagC, binDiff >= 0)
	c.setFlag(flagV, (c.A^v)&0x80 != 0 && (c.A^byte(binDiff))&0x80 != 0)

	lo := int(c.A&0x0F) - int(v&0x0F) - int(borrow)
	hi := int(c.A>>4) - int(v>>4)
	if lo < 0 {
		lo += 10
		hi--
	}
	if hi < 0 {
		hi += 10
	}
	c.A = byte(hi<<4) | byte(lo&0x0F)
	c.setNZ(byte(binDiff))
}

func opAND(c *CPU, addr uint16, mode addrMode) {
	c.A &= c.operand(addr, mode)
	c.setNZ(c.A)
}

func opORA(c *CPU, addr uint16, mode addrMode) {
	c.A |= c.operand(addr, mode)
	c.setNZ(c.A)
}

func opEOR(c *CPU, addr uint16, mode addrMode) {
	c.A ^= c.operand(addr, mode)
	c.setNZ(c.A)
}

func opASL(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.setNZ(v)
	c.storeResult(addr, mode, v)
}

func opLSR(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.setNZ(v)
	c.storeResult(addr, mode, v)
}

func opROL(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	oldC := byte(0)
	if c.getFlag(flagC) {
		oldC = 1
	}
	c.setFlag(flagC, v&0x80 != 0)
	v = v<<1 | oldC
	c.setNZ(v)
	c.storeResult(addr, mode, v)
}

func opROR(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	oldC := byte(0)
	if c.getFlag(flagC) {
		oldC = 0x80
	}
	c.setFlag(flagC, v&0x01 != 0)
	v = v>>1 | oldC
	c.setNZ(v)
	c.storeResult(addr, mode, v)
}

func opINC(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode) + 1
	c.setNZ(v)
	c.storeResult(addr, mode, v)
}

func opDEC(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode) - 1
	c.setNZ(v)
	c.storeResult(addr, mode, v)
}

func opINX(c *CPU, addr uint16, mode addrMode) { c.X++; c.setNZ(c.X) }
func opINY(c *CPU, addr uint16, mode addrMode) { c.Y++; c.setNZ(c.Y) }
func opDEX(c *CPU, addr uint16, mode addrMode) { c.X--; c.setNZ(c.X) }
func opDEY(c *CPU, addr uint16, mode addrMode) { c.Y--; c.setNZ(c.Y) }

func opLDA(c *CPU, addr uint16, mode addrMode) { c.A = c.operand(addr, mode); c.setNZ(c.A) }
func opLDX(c *CPU, addr uint16, mode addrMode) { c.X = c.operand(addr, mode); c.setNZ(c.X) }
func opLDY(c *CPU, addr uint16, mode addrMode) { c.Y = c.operand(addr, mode); c.setNZ(c.Y) }

func opSTA(c *CPU, addr uint16, mode addrMode) { c.sys.WriteByte(addr, c.A) }
func opSTX(c *CPU, addr uint16, mode addrMode) { c.sys.WriteByte(addr, c.X) }
func opSTY(c *CPU, addr uint16, mode addrMode) { c.sys.WriteByte(addr, c.Y) }

func opTAX(c *CPU, addr uint16, mode addrMode) { c.X = c.A; c.setNZ(c.X) }
func opTAY(c *CPU, addr uint16, mode addrMode) { c.Y = c.A; c.setNZ(c.Y) }
func opTXA(c *CPU, addr uint16, mode addrMode) { c.A = c.X; c.setNZ(c.A) }
func opTYA(c *CPU, addr uint16, mode addrMode) { c.A = c.Y; c.setNZ(c.A) }
func opTSX(c *CPU, addr uint16, mode addrMode) { c.X = c.SP; c.setNZ(c.X) }
func opTXS(c *CPU, addr uint16, mode addrMode) { c.SP = c.X }

func opCMP(c *CPU, addr uint16, mode addrMode) { compare(c, c.A, c.operand(addr, mode)) }
func opCPX(c *CPU, addr uint16, mode addrMode) { compare(c, c.X, c.operand(addr, mode)) }
func opCPY(c *CPU, addr uint16, mode addrMode) { compare(c, c.Y, c.operand(addr, mode)) }

func compare(c *CPU, reg, v byte) {
	diff := reg - v
	c.setFlag(flagC, reg >= v)
	c.setNZ(diff)
}

func opBIT(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	c.setFlag(flagZ, c.A&v == 0)
	c.setFlag(flagN, v&0x80 != 0)
	c.setFlag(flagV, v&0x40 != 0)
}

func opPHA(c *CPU, addr uint16, mode addrMode) { c.push(c.A) }
func opPHP(c *CPU, addr uint16, mode addrMode) { c.push(c.SR | flagB | flagU) }
func opPLA(c *CPU, addr uint16, mode addrMode) { c.A = c.pull(); c.setNZ(c.A) }
func opPLP(c *CPU, addr uint16, mode addrMode) {
	c.SR = (c.pull() &^ flagB) | flagU
}

func opJMP(c *CPU, addr uint16, mode addrMode) { c.PC = addr }

func opJSR(c *CPU, addr uint16, mode addrMode) {
	c.push16(c.PC - 1)
	c.PC = addr
}

func opRTS(c *CPU, addr uint16, mode addrMode) {
	c.PC = c.pull16() + 1
}

func opRTI(c *CPU, addr uint16, mode addrMode) {
	c.SR = (c.pull() &^ flagB) | flagU
	c.PC = c.pull16()
}

func opBRK(c *CPU, addr uint16, mode addrMode) {
	c.PC++ // BRK's operand byte is a padding signature byte, skipped
	c.enterInterrupt(irqVector, true)
}

func opNOP(c *CPU, addr uint16, mode addrMode) {}

func opCLC(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagC, false) }
func opSEC(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagC, true) }
func opCLI(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagI, false) }
func opSEI(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagI, true) }
func opCLD(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagD, false) }
func opSED(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagD, true) }
func opCLV(c *CPU, addr uint16, mode addrMode) { c.setFlag(flagV, false) }

func branch(c *CPU, addr uint16, taken bool) {
	if !taken {
		return
	}
	c.PC = addr
}

func opBCC(c *CPU, addr uint16, mode addrMode) { branch(c, addr, !c.getFlag(flagC)) }
func opBCS(c *CPU, addr uint16, mode addrMode) { branch(c, addr, c.getFlag(flagC)) }
func opBEQ(c *CPU, addr uint16, mode addrMode) { branch(c, addr, c.getFlag(flagZ)) }
func opBNE(c *CPU, addr uint16, mode addrMode) { branch(c, addr, !c.getFlag(flagZ)) }
func opBMI(c *CPU, addr uint16, mode addrMode) { branch(c, addr, c.getFlag(flagN)) }
func opBPL(c *CPU, addr uint16, mode addrMode) { branch(c, addr, !c.getFlag(flagN)) }
func opBVC(c *CPU, addr uint16, mode addrMode) { branch(c, addr, !c.getFlag(flagV)) }
func opBVS(c *CPU, addr uint16, mode addrMode) { branch(c, addr, c.getFlag(flagV)) }

// entry is a terse constructor used only inside buildOpcodeTable.
func entry(name string, mode addrMode, cycles int, pageCross bool, exec func(*CPU, uint16, addrMode)) opcodeEntry {
	return opcodeEntry{name: name, mode: mode, cycles: cycles, pageCross: pageCross, exec: exec}
}

// buildOpcodeTable fills in every legal opcode plus a representative set
// of illegal ones (opcodes_illegal.go fills those table slots). Any slot
// left untouched defaults to a two-cycle implied NOP, which is close
// enough to real silicon's behavior for the handful of illegal opcodes
// never exercised by ROMs or the documented demo-scene corpus.
func (c *CPU) buildOpcodeTable() {
	for i := range c.opcodes {
		c.opcodes[i] = entry("NOP", modeImp, 2, false, opNOP)
	}

	set := func(op byte, name string, mode addrMode, cycles int, pageCross bool, fn func(*CPU, uint16, addrMode)) {
		c.opcodes[op] = entry(name, mode, cycles, pageCross, fn)
	}

	// ADC
	set(0x69, "ADC", modeImm, 2, false, opADC)
	set(0x65, "ADC", modeZP, 3, false, opADC)
	set(0x75, "ADC", modeZPX, 4, false, opADC)
	set(0x6D, "ADC", modeAbs, 4, false, opADC)
	set(0x7D, "ADC", modeAbsX, 4, true, opADC)
	set(0x79, "ADC", modeAbsY, 4, true, opADC)
	set(0x61, "ADC", modeIndX, 6, false, opADC)
	set(0x71, "ADC", modeIndY, 5, true, opADC)

	// SBC
	set(0xE9, "SBC", modeImm, 2, false, opSBC)
	set(0xE5, "SBC", modeZP, 3, false, opSBC)
	set(0xF5, "SBC", modeZPX, 4, false, opSBC)
	set(0xED, "SBC", modeAbs, 4, false, opSBC)
	set(0xFD, "SBC", modeAbsX, 4, true, opSBC)
	set(0xF9, "SBC", modeAbsY, 4, true, opSBC)
	set(0xE1, "SBC", modeIndX, 6, false, opSBC)
	set(0xF1, "SBC", modeIndY, 5, true, opSBC)

	// AND
	set(0x29, "AND", modeImm, 2, false, opAND)
	set(0x25, "AND", modeZP, 3, false, opAND)
	set(0x35, "AND", modeZPX, 4, false, opAND)
	set(0x2D, "AND", modeAbs, 4, false, opAND)
	set(0x3D, "AND", modeAbsX, 4, true, opAND)
	set(0x39, "AND", modeAbsY, 4, true, opAND)
	set(0x21, "AND", modeIndX, 6, false, opAND)
	set(0x31, "AND", modeIndY, 5, true, opAND)

	// ORA
	set(0x09, "ORA", modeImm, 2, false, opORA)
	set(0x05, "ORA", modeZP, 3, false, opORA)
	set(0x15, "ORA", modeZPX, 4, false, opORA)
	set(0x0D, "ORA", modeAbs, 4, false, opORA)
	set(0x1D, "ORA", modeAbsX, 4, true, opORA)
	set(0x19, "ORA", modeAbsY, 4, true, opORA)
	set(0x01, "ORA", modeIndX, 6, false, opORA)
	set(0x11, "ORA", modeIndY, 5, true, opORA)

	// EOR
	set(0x49, "EOR", modeImm, 2, false, opEOR)
	set(0x45, "EOR", modeZP, 3, false, opEOR)
	set(0x55, "EOR", modeZPX, 4, false, opEOR)
	set(0x4D, "EOR", modeAbs, 4, false, opEOR)
	set(0x5D, "EOR", modeAbsX, 4, true, opEOR)
	set(0x59, "EOR", modeAbsY, 4, true, opEOR)
	set(0x41, "EOR", modeIndX, 6, false, opEOR)
	set(0x51, "EOR", modeIndY, 5, true, opEOR)

	// ASL
	set(0x0A, "ASL", modeAcc, 2, false, opASL)
	set(0x06, "ASL", modeZP, 5, false, opASL)
	set(0x16, "ASL", modeZPX, 6, false, opASL)
	set(0x0E, "ASL", modeAbs, 6, false, opASL)
	set(0x1E, "ASL", modeAbsX, 7, false, opASL)

	// LSR
	set(0x4A, "LSR", modeAcc, 2, false, opLSR)
	set(0x46, "LSR", modeZP, 5, false, opLSR)
	set(0x56, "LSR", modeZPX, 6, false, opLSR)
	set(0x4E, "LSR", modeAbs, 6, false, opLSR)
	set(0x5E, "LSR", modeAbsX, 7, false, opLSR)

	// ROL
	set(0x2A, "ROL", modeAcc, 2, false, opROL)
	set(0x26, "ROL", modeZP, 5, false, opROL)
	set(0x36, "ROL", modeZPX, 6, false, opROL)
	set(0x2E, "ROL", modeAbs, 6, false, opROL)
	set(0x3E, "ROL", modeAbsX, 7, false, opROL)

	// ROR
	set(0x6A, "ROR", modeAcc, 2, false, opROR)
	set(0x66, "ROR", modeZP, 5, false, opROR)
	set(0x76, "ROR", modeZPX, 6, false, opROR)
	set(0x6E, "ROR", modeAbs, 6, false, opROR)
	set(0x7E, "ROR", modeAbsX, 7, false, opROR)

	// INC/DEC
	set(0xE6, "INC", modeZP, 5, false, opINC)
	set(0xF6, "INC", modeZPX, 6, false, opINC)
	set(0xEE, "INC", modeAbs, 6, false, opINC)
	set(0xFE, "INC", modeAbsX, 7, false, opINC)
	set(0xC6, "DEC", modeZP, 5, false, opDEC)
	set(0xD6, "DEC", modeZPX, 6, false, opDEC)
	set(0xCE, "DEC", modeAbs, 6, false, opDEC)
	set(0xDE, "DEC", modeAbsX, 7, false, opDEC)

	set(0xE8, "INX", modeImp, 2, false, opINX)
	set(0xC8, "INY", modeImp, 2, false, opINY)
	set(0xCA, "DEX", modeImp, 2, false, opDEX)
	set(0x88, "DEY", modeImp, 2, false, opDEY)

	// LDA
	set(0xA9, "LDA", modeImm, 2, false, opLDA)
	set(0xA5, "LDA", modeZP, 3, false, opLDA)
	set(0xB5, "LDA", modeZPX, 4, false, opLDA)
	set(0xAD, "LDA", modeAbs, 4, false, opLDA)
	set(0xBD, "LDA", modeAbsX, 4, true, opLDA)
	set(0xB9, "LDA", modeAbsY, 4, true, opLDA)
	set(0xA1, "LDA", modeIndX, 6, false, opLDA)
	set(0xB1, "LDA", modeIndY, 5, true, opLDA)

	// LDX
	set(0xA2, "LDX", modeImm, 2, false, opLDX)
	set(0xA6, "LDX", modeZP, 3, false, opLDX)
	set(0xB6, "LDX", modeZPY, 4, false, opLDX)
	set(0xAE, "LDX", modeAbs, 4, false, opLDX)
	set(0xBE, "LDX", modeAbsY, 4, true, opLDX)

	// LDY
	set(0xA0, "LDY", modeImm, 2, false, opLDY)
	set(0xA4, "LDY", modeZP, 3, false, opLDY)
	set(0xB4, "LDY", modeZPX, 4, false, opLDY)
	set(0xAC, "LDY", modeAbs, 4, false, opLDY)
	set(0xBC, "LDY", modeAbsX, 4, true, opLDY)

	// STA
	set(0x85, "STA", modeZP, 3, false, opSTA)
	set(0x95, "STA", modeZPX, 4, false, opSTA)
	set(0x8D, "STA", modeAbs, 4, false, opSTA)
	set(0x9D, "STA", modeAbsX, 5, false, opSTA)
	set(0x99, "STA", modeAbsY, 5, false, opSTA)
	set(0x81, "STA", modeIndX, 6, false, opSTA)
	set(0x91, "STA", modeIndY, 6, false, opSTA)

	// STX/STY
	set(0x86, "STX", modeZP, 3, false, opSTX)
	set(0x96, "STX", modeZPY, 4, false, opSTX)
	set(0x8E, "STX", modeAbs, 4, false, opSTX)
	set(0x84, "STY", modeZP, 3, false, opSTY)
	set(0x94, "STY", modeZPX, 4, false, opSTY)
	set(0x8C, "STY", modeAbs, 4, false, opSTY)

	set(0xAA, "TAX", modeImp, 2, false, opTAX)
	set(0xA8, "TAY", modeImp, 2, false, opTAY)
	set(0x8A, "TXA", modeImp, 2, false, opTXA)
	set(0x98, "TYA", modeImp, 2, false, opTYA)
	set(0xBA, "TSX", modeImp, 2, false, opTSX)
	set(0x9A, "TXS", modeImp, 2, false, opTXS)

	// CMP/CPX/CPY
	set(0xC9, "CMP", modeImm, 2, false, opCMP)
	set(0xC5, "CMP", modeZP, 3, false, opCMP)
	set(0xD5, "CMP", modeZPX, 4, false, opCMP)
	set(0xCD, "CMP", modeAbs, 4, false, opCMP)
	set(0xDD, "CMP", modeAbsX, 4, true, opCMP)
	set(0xD9, "CMP", modeAbsY, 4, true, opCMP)
	set(0xC1, "CMP", modeIndX, 6, false, opCMP)
	set(0xD1, "CMP", modeIndY, 5, true, opCMP)
	set(0xE0, "CPX", modeImm, 2, false, opCPX)
	set(0xE4, "CPX", modeZP, 3, false, opCPX)
	set(0xEC, "CPX", modeAbs, 4, false, opCPX)
	set(0xC0, "CPY", modeImm, 2, false, opCPY)
	set(0xC4, "CPY", modeZP, 3, false, opCPY)
	set(0xCC, "CPY", modeAbs, 4, false, opCPY)

	set(0x24, "BIT", modeZP, 3, false, opBIT)
	set(0x2C, "BIT", modeAbs, 4, false, opBIT)

	set(0x48, "PHA", modeImp, 3, false, opPHA)
	set(0x08, "PHP", modeImp, 3, false, opPHP)
	set(0x68, "PLA", modeImp, 4, false, opPLA)
	set(0x28, "PLP", modeImp, 4, false, opPLP)

	set(0x4C, "JMP", modeAbs, 3, false, opJMP)
	set(0x6C, "JMP", modeInd, 5, false, opJMP)
	set(0x20, "JSR", modeAbs, 6, false, opJSR)
	set(0x60, "RTS", modeImp, 6, false, opRTS)
	set(0x40, "RTI", modeImp, 6, false, opRTI)
	set(0x00, "BRK", modeImp, 7, false, opBRK)
	set(0xEA, "NOP", modeImp, 2, false, opNOP)

	set(0x18, "CLC", modeImp, 2, false, opCLC)
	set(0x38, "SEC", modeImp, 2, false, opSEC)
	set(0x58, "CLI", modeImp, 2, false, opCLI)
	set(0x78, "SEI", modeImp, 2, false, opSEI)
	set(0xD8, "CLD", modeImp, 2, false, opCLD)
	set(0xF8, "SED", modeImp, 2, false, opSED)
	set(0xB8, "CLV", modeImp, 2, false, opCLV)

	set(0x90, "BCC", modeRel, 2, false, opBCC)
	set(0xB0, "BCS", modeRel, 2, false, opBCS)
	set(0xF0, "BEQ", modeRel, 2, false, opBEQ)
	set(0xD0, "BNE", modeRel, 2, false, opBNE)
	set(0x30, "BMI", modeRel, 2, false, opBMI)
	set(0x10, "BPL", modeRel, 2, false, opBPL)
	set(0x50, "BVC", modeRel, 2, false, opBVC)
	set(0x70, "BVS", modeRel, 2, false, opBVS)

	c.installIllegalOpcodes(set)
}
