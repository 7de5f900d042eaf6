package c64core

import (
	"fmt"
	"strings"
)

// DisassembledLine is one decoded instruction, formatted the way a trace
// console or machine-monitor style debugger would print it.
type DisassembledLine struct {
	Address  uint16
	HexBytes string
	Mnemonic string
	Size     int
}

// modeSize returns an addressing mode's instruction length in bytes,
// including the opcode byte itself.
func modeSize(mode addrMode) int {
	switch mode {
	case modeImp, modeAcc:
		return 1
	case modeImm, modeZP, modeZPX, modeZPY, modeIndX, modeIndY, modeRel:
		return 2
	default:
		return 3
	}
}

// Disassemble decodes one instruction starting at addr using PeekByte, so
// it never perturbs cycle counts or I/O side effects (reading a SID
// write-only register, an auto-incrementing counter, etc).
func (sys *System) Disassemble(addr uint16) DisassembledLine {
	opcode := sys.PeekByte(addr)
	entry := sys.cpu.opcodes[opcode]
	size := modeSize(entry.mode)

	data := make([]byte, size)
	for i := 0; i < size; i++ {
		data[i] = sys.PeekByte(addr + uint16(i))
	}

	hexParts := make([]string, size)
	for i, b := range data {
		hexParts[i] = fmt.Sprintf("%02X", b)
	}

	return DisassembledLine{
		Address:  addr,
		HexBytes: strings.Join(hexParts, " "),
		Mnemonic: formatMnemonic(entry, addr, data),
		Size:     size,
	}
}

func formatMnemonic(entry opcodeEntry, addr uint16, data []byte) string {
	if len(data) < modeSize(entry.mode) {
		return entry.name + " ???"
	}
	switch entry.mode {
	case modeImp:
		return entry.name
	case modeAcc:
		return entry.name + " A"
	case modeImm:
		return fmt.Sprintf("%s #$%02X", entry.name, data[1])
	case modeZP:
		return fmt.Sprintf("%s $%02X", entry.name, data[1])
	case modeZPX:
		return fmt.Sprintf("%s $%02X,X", entry.name, data[1])
	case modeZPY:
		return fmt.Sprintf("%s $%02X,Y", entry.name, data[1])
	case modeAbs:
		return fmt.Sprintf("%s $%04X", entry.name, le16(data))
	case modeAbsX:
		return fmt.Sprintf("%s $%04X,X", entry.name, le16(data))
	case modeAbsY:
		return fmt.Sprintf("%s $%04X,Y", entry.name, le16(data))
	case modeInd:
		return fmt.Sprintf("%s ($%04X)", entry.name, le16(data))
	case modeIndX:
		return fmt.Sprintf("%s ($%02X,X)", entry.name, data[1])
	case modeIndY:
		return fmt.Sprintf("%s ($%02X),Y", entry.name, data[1])
	case modeRel:
		target := addr + 2 + uint16(int8(data[1]))
		return fmt.Sprintf("%s $%04X", entry.name, target)
	default:
		return entry.name
	}
}

func le16(data []byte) uint16 {
	return uint16(data[1]) | uint16(data[2])<<8
}
