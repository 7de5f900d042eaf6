package c64core

// SIDModel selects the cutoff-curve approximation used by the filter.
type SIDModel int

const (
	SIDModel6581 SIDModel = iota
	SIDModel8580
)

// TraceHook is invoked once per retired CPU instruction, carrying enough
// context for an external debug console to print a disassembly line. It is
// the "trace hooks" narrow interface named in §1 — the core calls it if
// set, and otherwise does not know or care that anything is listening.
type TraceHook func(pc uint16, opcode byte, cycles int)

// System is the co-simulation kernel: it owns every chip and the arbiter
// that ticks them, and is the only type that reaches across chip
// boundaries. Individual chips hold a back-reference to System rather than
// to each other, per the "system owns all" pattern.
type System struct {
	mem  *Memory
	cia1 *CIA
	cia2 *CIA
	vic  *VIC
	sid  *SID
	cpu  *CPU
	bus  *Arbiter

	TraceHook TraceHook
}

// NewSystem wires up a complete, reset machine. ROM images must be loaded
// separately via LoadROMs before Reset/Step produce meaningful KERNAL
// behavior; an empty-ROM system still runs (it executes whatever garbage
// sits at the zero reset vector), matching §7's documented non-error.
func NewSystem(model SIDModel) *System {
	sys := &System{mem: newMemory()}
	sys.bus = newArbiter(sys)
	sys.cia1 = newCIA(sys, false)
	sys.cia2 = newCIA(sys, true)
	sys.vic = newVIC(sys)
	sys.sid = newSID(sys, model)
	sys.cpu = newCPU(sys)
	sys.Reset()
	return sys
}

// LoadROMs installs the three fixed-size ROM images (§6).
func (sys *System) LoadROMs(basic, kernal, char []byte) {
	sys.mem.LoadROMs(basic, kernal, char)
}

// Reset brings every component back to its documented power-up state and
// fetches the CPU's initial PC from the reset vector.
func (sys *System) Reset() {
	sys.cia1.reset()
	sys.cia2.reset()
	sys.vic.reset()
	sys.sid.reset()
	sys.cpu.reset()
}

// Step executes either one pending interrupt entry sequence or, when no
// interrupt is taken, exactly one CPU instruction, and returns the number
// of phi2 cycles it consumed. Every memory access within that step ticks
// CIA1, CIA2, VIC-II, and SID via the arbiter, so stepping the CPU is the
// entire top-level tick loop: there is nothing left over to drive
// separately.
func (sys *System) Step() int {
	before := sys.bus.MasterCycle()
	sys.cpu.step()
	return int(sys.bus.MasterCycle() - before)
}

// MasterCycle exposes the running cycle count for tests and trace tools.
func (sys *System) MasterCycle() uint64 {
	return sys.bus.MasterCycle()
}

// PC exposes the CPU's live program counter for a debug console or
// trace tool; it is read-only and has no effect on execution.
func (sys *System) PC() uint16 {
	return sys.cpu.PC
}

// Framebuffer exposes the VIC-II's rendered frame (§6).
func (sys *System) Framebuffer() []uint32 {
	return sys.vic.framebuffer[:]
}

// AudioSample produces one 16-bit PCM sample from the SID without
// advancing any chip clock — callers pace SID ticking themselves via Step
// and call AudioSample at whatever rate they're resampling to.
func (sys *System) AudioSample() int16 {
	return sys.sid.output()
}

// PressKey and ReleaseKey feed the host keyboard into CIA1's matrix.
// External callers (a UI event loop) may call these from a different
// goroutine than the one driving Step, so they go through CIA1's own
// mutex rather than touching core state directly.
func (sys *System) PressKey(row, col int)   { sys.cia1.setKey(row, col, true) }
func (sys *System) ReleaseKey(row, col int) { sys.cia1.setKey(row, col, false) }

// SetPaddle pokes a host paddle/potentiometer reading into the SID's
// POTX/POTY latches (§6).
func (sys *System) SetPaddle(x, y byte) { sys.sid.setPaddles(x, y) }

// ReadByte and WriteByte are the CPU's only window onto memory (§4.2):
// every call issues exactly one arbiter bus cycle (more, if the read
// stalls behind a low BA) before resolving through the PLA.
func (sys *System) ReadByte(addr uint16) byte {
	sys.bus.CPUBusCycle(false)
	return sys.resolveRead(addr)
}

func (sys *System) WriteByte(addr uint16, value byte) {
	sys.bus.CPUBusCycle(true)
	sys.resolveWrite(addr, value)
}

// PeekByte reads memory the way ReadByte does, but without ticking the
// arbiter. It exists for tests and the disassembler/trace console, which
// need to inspect memory without perturbing cycle counts.
func (sys *System) PeekByte(addr uint16) byte {
	return sys.resolveRead(addr)
}

func (sys *System) resolveRead(addr uint16) byte {
	if addr < 2 {
		return sys.cpu.readPort(addr)
	}
	loram, hiram, charen := sys.cpu.plaBits()
	bank := plaDecode(addr, loram, hiram, charen)
	if bank == bankIO {
		return sys.readIO(addr)
	}
	return sys.mem.read(addr, bank)
}

func (sys *System) resolveWrite(addr uint16, value byte) {
	if addr < 2 {
		sys.cpu.writePort(addr, value)
		return
	}
	loram, hiram, charen := sys.cpu.plaBits()
	bank := plaDecode(addr, loram, hiram, charen)
	if bank == bankIO {
		sys.writeIO(addr, value)
	}
	sys.mem.write(addr, value) // RAM shadow always updates, even under ROM/IO
}

// readIO and writeIO subdivide the $D000-$DFFF I/O window per §4.2/§6.
func (sys *System) readIO(addr uint16) byte {
	switch {
	case addr <= VICEnd:
		return sys.vic.read(addr & (VICRegCount - 1))
	case addr <= SIDEnd:
		return sys.sid.read(byte(addr & (SIDRegStride - 1)))
	case addr <= 0xDBFF:
		return sys.mem.readColorRAM(addr)
	case addr <= CIA1End:
		return sys.cia1.read(byte(addr & (CIARegStride - 1)))
	case addr <= CIA2End:
		return sys.cia2.read(byte(addr & (CIARegStride - 1)))
	default:
		return 0xFF // $DE00-$DFFF: unmapped expansion I/O
	}
}

func (sys *System) writeIO(addr uint16, value byte) {
	switch {
	case addr <= VICEnd:
		sys.vic.write(addr&(VICRegCount-1), value)
	case addr <= SIDEnd:
		sys.sid.write(byte(addr&(SIDRegStride-1)), value)
	case addr <= 0xDBFF:
		sys.mem.writeColorRAM(addr, value)
	case addr <= CIA1End:
		sys.cia1.write(byte(addr&(CIARegStride-1)), value)
	case addr <= CIA2End:
		sys.cia2.write(byte(addr&(CIARegStride-1)), value)
	default:
		// $DE00-$DFFF: unmapped expansion I/O, writes are dropped
	}
}
