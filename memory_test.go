package c64core

import "testing"

func romImage(size int, fill byte) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestPLADecodeDefaultBanksInROM(t *testing.T) {
	// LORAM=1, HIRAM=1, CHAREN=1 is the KERNAL's normal running
	// configuration: BASIC and KERNAL ROM visible, I/O visible at $D000.
	if bank := plaDecode(0xA000, true, true, true); bank != bankBasicROM {
		t.Fatalf("expected BASIC ROM at $A000, got %v", bank)
	}
	if bank := plaDecode(0xE000, true, true, true); bank != bankKernalROM {
		t.Fatalf("expected KERNAL ROM at $E000, got %v", bank)
	}
	if bank := plaDecode(0xD000, true, true, true); bank != bankIO {
		t.Fatalf("expected I/O at $D000, got %v", bank)
	}
}

func TestPLADecodeAllRAM(t *testing.T) {
	if bank := plaDecode(0xA000, false, false, false); bank != bankRAM {
		t.Fatalf("expected RAM at $A000 with all banks disabled, got %v", bank)
	}
	if bank := plaDecode(0xD000, false, false, false); bank != bankRAM {
		t.Fatalf("expected RAM at $D000 with HIRAM/LORAM clear, got %v", bank)
	}
}

func TestPLADecodeCharROMVisible(t *testing.T) {
	// HIRAM set, CHAREN clear: character ROM shadows the I/O window.
	if bank := plaDecode(0xD000, false, true, false); bank != bankCharROM {
		t.Fatalf("expected char ROM at $D000, got %v", bank)
	}
}

func TestMemoryWriteAlwaysShadowsRAM(t *testing.T) {
	m := newMemory()
	m.LoadROMs(romImage(BasicROMSize, 0xAA), romImage(KernalROMSize, 0xBB), romImage(CharROMSize, 0xCC))

	// Writing through a ROM-visible address must still land in RAM.
	m.write(0xE000, 0x42)
	if got := m.read(0xE000, bankKernalROM); got != 0xBB {
		t.Fatalf("ROM read should be unaffected by RAM shadow write, got %#02x", got)
	}
	if got := m.ram[0xE000]; got != 0x42 {
		t.Fatalf("expected RAM shadow to hold the written byte, got %#02x", got)
	}
}

func TestColorRAMNibbleWidth(t *testing.T) {
	m := newMemory()
	m.writeColorRAM(ColorRAMBase, 0xFE)
	if got := m.readColorRAM(ColorRAMBase); got != 0xFE&0x0F|0xF0 {
		t.Fatalf("expected low nibble preserved with open-bus high nibble, got %#02x", got)
	}
}
