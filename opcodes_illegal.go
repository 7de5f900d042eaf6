package c64core

// This file fills in a representative subset of the 6510's undocumented
// opcodes: the combined read-modify-write instructions (SLO, RLA, SRE,
// RRA, DCP, ISC), the load/store combinations (LAX, SAX), the immediate
// combos (ANC, ALR, ARR, SBX), the extra SBC alias at $EB, and the
// multi-byte NOP forms demos commonly use as filler. Opcodes outside this
// set keep the default two-cycle implied NOP installed in
// buildOpcodeTable — real silicon's behavior for the untouched slots is
// either equally obscure or outright unstable (e.g. $02/$12/... halt the
// bus), and emulating a jam opcode's exact lockup is out of scope here.

type setFn = func(op byte, name string, mode addrMode, cycles int, pageCross bool, fn func(*CPU, uint16, addrMode))

func opLAX(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	c.A = v
	c.X = v
	c.setNZ(v)
}

func opSAX(c *CPU, addr uint16, mode addrMode) {
	c.sys.WriteByte(addr, c.A&c.X)
}

func opDCP(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode) - 1
	c.sys.WriteByte(addr, v)
	compare(c, c.A, v)
}

func opISC(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode) + 1
	c.sys.WriteByte(addr, v)
	opSBCValue(c, v)
}

// opSBCValue shares SBC's binary/decimal logic with a value already read
// off the bus, for the RMW-combined illegal opcodes.
func opSBCValue(c *CPU, v byte) {
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

func opSLO(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.sys.WriteByte(addr, v)
	c.A |= v
	c.setNZ(c.A)
}

func opRLA(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	oldC := byte(0)
	if c.getFlag(flagC) {
		oldC = 1
	}
	c.setFlag(flagC, v&0x80 != 0)
	v = v<<1 | oldC
	c.sys.WriteByte(addr, v)
	c.A &= v
	c.setNZ(c.A)
}

func opSRE(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.sys.WriteByte(addr, v)
	c.A ^= v
	c.setNZ(c.A)
}

func opRRA(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	oldC := byte(0)
	if c.getFlag(flagC) {
		oldC = 0x80
	}
	c.setFlag(flagC, v&0x01 != 0)
	v = v>>1 | oldC
	c.sys.WriteByte(addr, v)
	opADCValue(c, v)
}

func opADCValue(c *CPU, v byte) {
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

func opANC(c *CPU, addr uint16, mode addrMode) {
	c.A &= c.operand(addr, mode)
	c.setNZ(c.A)
	c.setFlag(flagC, c.A&0x80 != 0)
}

func opALR(c *CPU, addr uint16, mode addrMode) {
	c.A &= c.operand(addr, mode)
	c.setFlag(flagC, c.A&0x01 != 0)
	c.A >>= 1
	c.setNZ(c.A)
}

func opARR(c *CPU, addr uint16, mode addrMode) {
	c.A &= c.operand(addr, mode)
	oldC := byte(0)
	if c.getFlag(flagC) {
		oldC = 0x80
	}
	c.A = c.A>>1 | oldC
	c.setNZ(c.A)
	c.setFlag(flagC, c.A&0x40 != 0)
	c.setFlag(flagV, (c.A>>6)&1 != (c.A>>5)&1)
}

func opSBX(c *CPU, addr uint16, mode addrMode) {
	v := c.operand(addr, mode)
	result := (c.A & c.X) - v
	c.setFlag(flagC, (c.A&c.X) >= v)
	c.X = result
	c.setNZ(c.X)
}

func (c *CPU) installIllegalOpcodes(set setFn) {
	set(0xA7, "LAX", modeZP, 3, false, opLAX)
	set(0xB7, "LAX", modeZPY, 4, false, opLAX)
	set(0xAF, "LAX", modeAbs, 4, false, opLAX)
	set(0xBF, "LAX", modeAbsY, 4, true, opLAX)
	set(0xA3, "LAX", modeIndX, 6, false, opLAX)
	set(0xB3, "LAX", modeIndY, 5, true, opLAX)

	set(0x87, "SAX", modeZP, 3, false, opSAX)
	set(0x97, "SAX", modeZPY, 4, false, opSAX)
	set(0x8F, "SAX", modeAbs, 4, false, opSAX)
	set(0x83, "SAX", modeIndX, 6, false, opSAX)

	set(0xC7, "DCP", modeZP, 5, false, opDCP)
	set(0xD7, "DCP", modeZPX, 6, false, opDCP)
	set(0xCF, "DCP", modeAbs, 6, false, opDCP)
	set(0xDF, "DCP", modeAbsX, 7, false, opDCP)
	set(0xDB, "DCP", modeAbsY, 7, false, opDCP)
	set(0xC3, "DCP", modeIndX, 8, false, opDCP)
	set(0xD3, "DCP", modeIndY, 8, false, opDCP)

	set(0xE7, "ISC", modeZP, 5, false, opISC)
	set(0xF7, "ISC", modeZPX, 6, false, opISC)
	set(0xEF, "ISC", modeAbs, 6, false, opISC)
	set(0xFF, "ISC", modeAbsX, 7, false, opISC)
	set(0xFB, "ISC", modeAbsY, 7, false, opISC)
	set(0xE3, "ISC", modeIndX, 8, false, opISC)
	set(0xF3, "ISC", modeIndY, 8, false, opISC)

	set(0x07, "SLO", modeZP, 5, false, opSLO)
	set(0x17, "SLO", modeZPX, 6, false, opSLO)
	set(0x0F, "SLO", modeAbs, 6, false, opSLO)
	set(0x1F, "SLO", modeAbsX, 7, false, opSLO)
	set(0x1B, "SLO", modeAbsY, 7, false, opSLO)
	set(0x03, "SLO", modeIndX, 8, false, opSLO)
	set(0x13, "SLO", modeIndY, 8, false, opSLO)

	set(0x27, "RLA", modeZP, 5, false, opRLA)
	set(0x37, "RLA", modeZPX, 6, false, opRLA)
	set(0x2F, "RLA", modeAbs, 6, false, opRLA)
	set(0x3F, "RLA", modeAbsX, 7, false, opRLA)
	set(0x3B, "RLA", modeAbsY, 7, false, opRLA)
	set(0x23, "RLA", modeIndX, 8, false, opRLA)
	set(0x33, "RLA", modeIndY, 8, false, opRLA)

	set(0x47, "SRE", modeZP, 5, false, opSRE)
	set(0x57, "SRE", modeZPX, 6, false, opSRE)
	set(0x4F, "SRE", modeAbs, 6, false, opSRE)
	set(0x5F, "SRE", modeAbsX, 7, false, opSRE)
	set(0x5B, "SRE", modeAbsY, 7, false, opSRE)
	set(0x43, "SRE", modeIndX, 8, false, opSRE)
	set(0x53, "SRE", modeIndY, 8, false, opSRE)

	set(0x67, "RRA", modeZP, 5, false, opRRA)
	set(0x77, "RRA", modeZPX, 6, false, opRRA)
	set(0x6F, "RRA", modeAbs, 6, false, opRRA)
	set(0x7F, "RRA", modeAbsX, 7, false, opRRA)
	set(0x7B, "RRA", modeAbsY, 7, false, opRRA)
	set(0x63, "RRA", modeIndX, 8, false, opRRA)
	set(0x73, "RRA", modeIndY, 8, false, opRRA)

	set(0x0B, "ANC", modeImm, 2, false, opANC)
	set(0x2B, "ANC", modeImm, 2, false, opANC)
	set(0x4B, "ALR", modeImm, 2, false, opALR)
	set(0x6B, "ARR", modeImm, 2, false, opARR)
	set(0xCB, "SBX", modeImm, 2, false, opSBX)
	set(0xEB, "SBC", modeImm, 2, false, opSBC)

	// Multi-byte NOPs: these read and discard an operand (so the PC
	// advances and any page-cross cycle is charged) but have no other
	// effect, matching the documented behavior demos rely on to skip
	// bytes without disturbing registers.
	set(0x04, "NOP", modeZP, 3, false, opNOP)
	set(0x44, "NOP", modeZP, 3, false, opNOP)
	set(0x64, "NOP", modeZP, 3, false, opNOP)
	set(0x0C, "NOP", modeAbs, 4, false, opNOP)
	set(0x14, "NOP", modeZPX, 4, false, opNOP)
	set(0x34, "NOP", modeZPX, 4, false, opNOP)
	set(0x54, "NOP", modeZPX, 4, false, opNOP)
	set(0x74, "NOP", modeZPX, 4, false, opNOP)
	set(0xD4, "NOP", modeZPX, 4, false, opNOP)
	set(0xF4, "NOP", modeZPX, 4, false, opNOP)
	set(0x1A, "NOP", modeImp, 2, false, opNOP)
	set(0x3A, "NOP", modeImp, 2, false, opNOP)
	set(0x5A, "NOP", modeImp, 2, false, opNOP)
	set(0x7A, "NOP", modeImp, 2, false, opNOP)
	set(0xDA, "NOP", modeImp, 2, false, opNOP)
	set(0xFA, "NOP", modeImp, 2, false, opNOP)
	set(0x80, "NOP", modeImm, 2, false, opNOP)
	set(0x1C, "NOP", modeAbsX, 4, true, opNOP)
	set(0x3C, "NOP", modeAbsX, 4, true, opNOP)
	set(0x5C, "NOP", modeAbsX, 4, true, opNOP)
	set(0x7C, "NOP", modeAbsX, 4, true, opNOP)
	set(0xDC, "NOP", modeAbsX, 4, true, opNOP)
	set(0xFC, "NOP", modeAbsX, 4, true, opNOP)
}
