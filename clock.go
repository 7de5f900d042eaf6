package c64core

// PAL timing constants. NTSC switching is a documented Non-goal; these are
// named rather than inlined so a future NTSC mode has an obvious home.
const (
	PALLinesPerFrame = 312
	PALCyclesPerLine = 63
)

// Arbiter advances the shared master clock and mediates CPU bus ownership
// against the VIC-II BA line. It owns no state of its own beyond the cycle
// counter: ticking order and bus-stall behavior are the whole of its job.
type Arbiter struct {
	sys         *System
	masterCycle uint64
}

func newArbiter(sys *System) *Arbiter {
	return &Arbiter{sys: sys}
}

// Tick advances every chip clock by exactly one phi2 cycle, in the fixed
// order CIA1, CIA2, VIC-II, SID, then increments the master counter.
func (a *Arbiter) Tick() {
	a.sys.cia1.clock()
	a.sys.cia2.clock()
	a.sys.vic.clock()
	a.sys.sid.clock()
	a.masterCycle++

	// CIA1 and the VIC-II both route to IRQ; CIA2 routes to NMI (§4.3/§4.4).
	a.sys.cpu.SetIRQ(a.sys.cia1.IRQPending() || a.sys.vic.IRQPending())
	a.sys.cpu.SetNMI(a.sys.cia2.IRQPending())
}

// MasterCycle returns the number of phi2 ticks issued so far.
func (a *Arbiter) MasterCycle() uint64 {
	return a.masterCycle
}

// CPUBusCycle acquires the bus for one CPU memory access. Reads stall while
// the VIC-II holds BA low (bad lines, sprite DMA); writes never stall. Per
// §4.1 the stalled cycles and the eventual transfer cycle are each one
// Tick(), so every CPU memory access is intrinsically cycle-accurate.
func (a *Arbiter) CPUBusCycle(isWrite bool) {
	if !isWrite {
		for a.sys.vic.baLow {
			a.Tick()
		}
	}
	a.Tick()
}
