package c64core

import "testing"

func TestDisassembleImmediateLoad(t *testing.T) {
	sys := newTestSystem([]byte{0xA9, 0x42}) // LDA #$42
	line := sys.Disassemble(0x0600)
	if line.Mnemonic != "LDA #$42" {
		t.Fatalf("expected %q, got %q", "LDA #$42", line.Mnemonic)
	}
	if line.Size != 2 {
		t.Fatalf("expected immediate mode size 2, got %d", line.Size)
	}
	if line.HexBytes != "A9 42" {
		t.Fatalf("expected hex bytes %q, got %q", "A9 42", line.HexBytes)
	}
}

func TestDisassembleAbsoluteStore(t *testing.T) {
	sys := newTestSystem([]byte{0x8D, 0x00, 0x04}) // STA $0400
	line := sys.Disassemble(0x0600)
	if line.Mnemonic != "STA $0400" {
		t.Fatalf("expected %q, got %q", "STA $0400", line.Mnemonic)
	}
}

func TestDisassembleRelativeBranchResolvesTarget(t *testing.T) {
	sys := newTestSystem([]byte{0xF0, 0x05}) // BEQ *+5 relative to the following instruction
	line := sys.Disassemble(0x0600)
	if line.Mnemonic != "BEQ $0607" {
		t.Fatalf("expected branch target $0607, got %q", line.Mnemonic)
	}
}

func TestDisassembleImpliedHasNoOperand(t *testing.T) {
	sys := newTestSystem([]byte{0xEA}) // NOP
	line := sys.Disassemble(0x0600)
	if line.Mnemonic != "NOP" {
		t.Fatalf("expected bare mnemonic %q, got %q", "NOP", line.Mnemonic)
	}
	if line.Size != 1 {
		t.Fatalf("expected implied mode size 1, got %d", line.Size)
	}
}

func TestDisassembleDoesNotPerturbState(t *testing.T) {
	sys := newTestSystem([]byte{0xEE, 0x00, 0x04}) // INC $0400
	sys.WriteByte(0x0400, 0x10)
	before := sys.PeekByte(0x0400)
	sys.Disassemble(0x0600)
	after := sys.PeekByte(0x0400)
	if before != after {
		t.Fatalf("expected disassembling not to execute INC: $0400 changed from $%02X to $%02X", before, after)
	}
}
