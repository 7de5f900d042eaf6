package c64core

// Status register flag bits (§4.1).
const (
	flagC byte = 1 << 0
	flagZ byte = 1 << 1
	flagI byte = 1 << 2
	flagD byte = 1 << 3
	flagB byte = 1 << 4
	flagU byte = 1 << 5 // unused, always reads 1
	flagV byte = 1 << 6
	flagN byte = 1 << 7
)

const (
	stackBase   = 0x0100
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
	nmiVector   = 0xFFFA
)

// addrMode enumerates the 6502's addressing modes. Each opcode's table
// entry names one; resolveOperand turns it into an effective address (or,
// for immediate/accumulator/implied, a sentinel) plus whether a page
// boundary was crossed, which several modes charge an extra cycle for.
type addrMode int

const (
	modeImp addrMode = iota
	modeAcc
	modeImm
	modeZP
	modeZPX
	modeZPY
	modeAbs
	modeAbsX
	modeAbsY
	modeInd
	modeIndX
	modeIndY
	modeRel
)

// opcodeEntry is one row of the dispatch table: the instruction's
// addressing mode, base cycle count, whether that mode's extra
// page-cross cycle applies to this instruction, and the executor.
type opcodeEntry struct {
	name      string
	mode      addrMode
	cycles    int
	pageCross bool // charge +1 if the effective address crosses a page
	exec      func(c *CPU, addr uint16, mode addrMode)
}

// CPU implements the 6510: a 6502 core plus the two-pin I/O port mapped at
// $00/$01 that drives the PLA's LORAM/HIRAM/CHAREN bank-select lines. It
// holds no memory of its own — every access goes through System, which is
// also what ticks the arbiter once per bus cycle.
type CPU struct {
	sys *System

	PC uint16
	SP byte
	A, X, Y byte
	SR byte

	irqLine bool // level-sensitic: held until the source clears it
	nmiLine bool
	nmiPrev bool // edge detector: NMI fires only when the line goes from released to asserted

	// port6510 holds the CPU's own two output-latch bits (data direction
	// register and output register) for $00/$01. Input bits with no
	// external driver float and read back as whatever was last driven,
	// modeling the well-known "RAM as capacitor" pull-up behavior rather
	// than pretending unconnected lines read deterministically as 1.
	portDDR byte
	portOut byte
	portFloat byte // last driven value on currently-input-configured bits

	halted bool // STP executed (illegal opcode $02 family): never modeled as reachable from legal ROMs

	opcodes [256]opcodeEntry
}

func newCPU(sys *System) *CPU {
	c := &CPU{sys: sys}
	c.buildOpcodeTable()
	return c
}

func (c *CPU) reset() {
	c.SP = 0xFD
	c.SR = flagI | flagU
	c.portDDR = 0x2F // power-up default: bits 0-3 and 5 output, matches KERNAL expectation
	c.portOut = 0x37
	lo := c.sys.PeekByte(resetVector)
	hi := c.sys.PeekByte(resetVector + 1)
	c.PC = uint16(lo) | uint16(hi)<<8
}

// SetIRQ and SetNMI are how CIA1/CIA2 (via System) assert their interrupt
// lines onto the CPU. IRQ is level-sensitive: it fires every time the CPU
// checks and finds it asserted with I clear. NMI is edge-sensitive: it
// fires once per low transition regardless of the I flag.
func (c *CPU) SetIRQ(asserted bool) { c.irqLine = asserted }
func (c *CPU) SetNMI(asserted bool) { c.nmiLine = asserted }

func (c *CPU) getFlag(f byte) bool { return c.SR&f != 0 }
func (c *CPU) setFlag(f byte, v bool) {
	if v {
		c.SR |= f
	} else {
		c.SR &^= f
	}
}

func (c *CPU) setNZ(v byte) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

func (c *CPU) push(v byte) {
	c.sys.WriteByte(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.sys.ReadByte(stackBase + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(lo) | uint16(hi)<<8
}

// readPort and writePort implement the $00/$01 CPU I/O port. $00 is the
// data direction register; $01 is the data register, whose low three bits
// (LORAM, HIRAM, CHAREN) the PLA reads directly off this latch. Bits
// configured as input have no driver on real hardware and float at
// whatever the output bus last charged them to — modeled here as the
// last-written value of that bit rather than a fixed 1, since that is
// what actually determines the commonly-cited $37/$00-port-read quirks.
func (c *CPU) readPort(addr uint16) byte {
	if addr == 0 {
		return c.portDDR
	}
	driven := c.portOut & c.portDDR
	floated := c.portFloat &^ c.portDDR
	return driven | floated
}

func (c *CPU) writePort(addr uint16, v byte) {
	if addr == 0 {
		c.portDDR = v
		return
	}
	c.portOut = v
	c.portFloat = v // every write charges the floating capacitance too
}

// plaBits extracts LORAM/HIRAM/CHAREN from the live port state for the
// PLA decoder (§4.2).
func (c *CPU) plaBits() (loram, hiram, charen bool) {
	v := c.readPort(1)
	return v&0x01 != 0, v&0x02 != 0, v&0x04 != 0
}

func (c *CPU) fetch() byte {
	v := c.sys.ReadByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(lo) | uint16(hi)<<8
}

// step executes one instruction, first servicing any pending interrupt
// entry, and returns nothing — callers read cycle deltas off
// System.MasterCycle instead, since every memory access already ticks the
// arbiter itself (§4.1: stepping the CPU is the entire tick loop).
func (c *CPU) step() {
	if c.serviceInterrupts() {
		return
	}

	before := c.sys.bus.MasterCycle()
	pc := c.PC
	opcode := c.fetch()
	entry := c.opcodes[opcode]

	addr, crossed := c.resolveOperand(entry.mode)
	if c.sys.TraceHook != nil {
		c.sys.TraceHook(pc, opcode, entry.cycles)
	}
	pcBefore := c.PC
	entry.exec(c, addr, entry.mode)

	target := entry.cycles
	if entry.pageCross && crossed {
		target++
	}
	if entry.mode == modeRel && c.PC != pcBefore {
		target++ // branch taken
		if crossed {
			target++ // taken branch additionally crossing a page
		}
	}
	c.padCycles(before, target)
}

// padCycles makes up the difference between an instruction's documented
// cycle count and however many bus cycles resolveOperand/exec actually
// issued, by ticking the arbiter directly for the remainder. Real
// hardware drives the bus on every cycle including "free" ones (dummy
// reads, the second RMW write-back, a taken branch's extra cycle); this
// keeps CIA/VIC/SID timing synchronized to those without modeling every
// individual dummy bus transaction.
func (c *CPU) padCycles(before uint64, target int) {
	consumed := int(c.sys.bus.MasterCycle() - before)
	for ; consumed < target; consumed++ {
		c.sys.bus.Tick()
	}
}

// serviceInterrupts checks NMI (edge) then IRQ (level, gated by the I
// flag) and, if either fires, runs the shared 7-cycle interrupt entry
// sequence (§4.1). NMI takes priority when both are pending simultaneously.
func (c *CPU) serviceInterrupts() bool {
	nmiEdge := c.nmiLine && !c.nmiPrev
	c.nmiPrev = c.nmiLine

	if nmiEdge {
		c.enterInterrupt(nmiVector, false)
		return true
	}
	if c.irqLine && !c.getFlag(flagI) {
		c.enterInterrupt(irqVector, false)
		return true
	}
	return false
}

// enterInterrupt runs the 7-cycle sequence common to IRQ/NMI/BRK: two
// dummy cycles (modeled as PC-relative reads with no side effect beyond
// the bus tick; for BRK the first is its own opcode fetch), push PCH,
// PCL, SR (with B flag set only for BRK), set I,
// and load PC from the vector. isBRK controls the pushed B flag per
// §4.1's "B flag is a push-time artifact, not a real latch" rule.
func (c *CPU) enterInterrupt(vector uint16, isBRK bool) {
	if !isBRK {
		// For BRK the opcode fetch already took the first of the seven
		// cycles, so only one dummy read precedes the pushes.
		c.sys.ReadByte(c.PC)
	}
	c.sys.ReadByte(c.PC)
	c.push16(c.PC)
	sr := c.SR | flagU
	if isBRK {
		sr |= flagB
	} else {
		sr &^= flagB
	}
	c.push(sr)
	c.setFlag(flagI, true)
	lo := c.sys.ReadByte(vector)
	hi := c.sys.ReadByte(vector + 1)
	c.PC = uint16(lo) | uint16(hi)<<8
}

// resolveOperand computes the effective address for a non-implied
// addressing mode, issuing that mode's operand and pointer reads
// (including the 6502's well-known zero-page-wraparound and indirect-JMP
// page-boundary bugs; dummy reads are not issued and are made up by
// padCycles), and reports whether indexing crossed a page boundary.
func (c *CPU) resolveOperand(mode addrMode) (uint16, bool) {
	switch mode {
	case modeImp, modeAcc:
		return 0, false
	case modeImm:
		addr := c.PC
		c.PC++
		return addr, false
	case modeZP:
		return uint16(c.fetch()), false
	case modeZPX:
		return uint16(c.fetch()+c.X) & 0x00FF, false
	case modeZPY:
		return uint16(c.fetch()+c.Y) & 0x00FF, false
	case modeAbs:
		return c.fetch16(), false
	case modeAbsX:
		base := c.fetch16()
		addr := base + uint16(c.X)
		return addr, (base & 0xFF00) != (addr & 0xFF00)
	case modeAbsY:
		base := c.fetch16()
		addr := base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)
	case modeInd:
		ptr := c.fetch16()
		lo := c.sys.ReadByte(ptr)
		// Reproduces the original 6502's indirect-JMP bug: the high byte
		// is fetched from the same page, wrapping at a page boundary
		// instead of crossing into the next page.
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		hi := c.sys.ReadByte(hiAddr)
		return uint16(lo) | uint16(hi)<<8, false
	case modeIndX:
		zp := c.fetch() + c.X
		lo := c.sys.ReadByte(uint16(zp))
		hi := c.sys.ReadByte(uint16(zp + 1))
		return uint16(lo) | uint16(hi)<<8, false
	case modeIndY:
		zp := c.fetch()
		lo := c.sys.ReadByte(uint16(zp))
		hi := c.sys.ReadByte(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)
	case modeRel:
		offset := int8(c.fetch())
		base := c.PC // address of the following instruction
		target := uint16(int32(base) + int32(offset))
		return target, (base & 0xFF00) != (target & 0xFF00)
	}
	return 0, false
}

// operand fetches the byte an instruction operates on, for modes other
// than accumulator/implied (callers on those modes never call this).
func (c *CPU) operand(addr uint16, mode addrMode) byte {
	if mode == modeAcc {
		return c.A
	}
	return c.sys.ReadByte(addr)
}
