package c64core

import "testing"

func TestArbiterTickAdvancesMasterCycle(t *testing.T) {
	sys := newTestSystem(nil)
	before := sys.MasterCycle()
	sys.bus.Tick()
	if sys.MasterCycle() != before+1 {
		t.Fatalf("expected MasterCycle to advance by one tick")
	}
}

func TestArbiterRoutesCIA1AndVICToIRQ(t *testing.T) {
	sys := newTestSystem(nil)
	sys.cia1.icrMask = icrTA
	sys.cia1.write(ciaTALo, 0x01)
	sys.cia1.write(ciaTAHi, 0x00)
	sys.cia1.write(ciaCRA, crSTART)
	for i := 0; i < 8; i++ {
		sys.bus.Tick()
	}
	if !sys.cpu.irqLine {
		t.Fatalf("expected CIA1's timer underflow to route onto the CPU IRQ line via the arbiter")
	}

	// Acknowledge and mask CIA1, then let the VIC-II alone drive the line.
	sys.cia1.icrMask = 0
	sys.cia1.read(ciaICR)
	sys.bus.Tick()
	if sys.cpu.irqLine {
		t.Fatalf("expected the IRQ line to drop once CIA1's interrupt is acknowledged and masked")
	}
	sys.vic.imr = 0x01
	sys.vic.irr = 0x01
	sys.bus.Tick()
	if !sys.cpu.irqLine {
		t.Fatalf("expected a pending VIC-II raster interrupt to route onto the CPU IRQ line via the arbiter")
	}
}

func TestArbiterRoutesCIA2ToNMI(t *testing.T) {
	sys := newTestSystem(nil)
	sys.cia2.icrMask = icrTA
	sys.cia2.write(ciaTALo, 0x01)
	sys.cia2.write(ciaTAHi, 0x00)
	sys.cia2.write(ciaCRA, crSTART)
	for i := 0; i < 8; i++ {
		sys.bus.Tick()
	}
	if !sys.cpu.nmiLine {
		t.Fatalf("expected CIA2's timer underflow to route onto the CPU NMI line via the arbiter")
	}
}

func TestSystemStepReturnsConsumedCycles(t *testing.T) {
	sys := newTestSystem([]byte{0xEA}) // NOP, 2 cycles
	n := sys.Step()
	if n != 2 {
		t.Fatalf("expected a 2-cycle NOP to report 2 consumed cycles, got %d", n)
	}
}

func TestSystemKeyboardRoundTrip(t *testing.T) {
	sys := newTestSystem(nil)
	sys.PressKey(1, 4)
	sys.cia1.ddra = 0xFF
	sys.cia1.pra = ^byte(1 << 4)
	if got := sys.cia1.readPRB(); got&(1<<1) != 0 {
		t.Fatalf("expected row 1 pulled low by the pressed key")
	}
	sys.ReleaseKey(1, 4)
	if got := sys.cia1.readPRB(); got&(1<<1) == 0 {
		t.Fatalf("expected row 1 to float back high once the key is released")
	}
}
