package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/retrosilicon/c64core"
	"golang.org/x/term"
)

// runMonitor is a minimal machine-monitor console: it puts stdin into raw
// mode so single keystrokes reach it without waiting on Enter, and offers
// a handful of inspection commands against the live system. It runs on
// its own goroutine alongside the driver and video loop.
func runMonitor(sys *c64core.System, drv *driver) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return // no interactive terminal attached (piped input, CI, etc.)
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, oldState)

	fmt.Print("\r\nc64run monitor attached — 'p' pc, 'd' disasm, 'r' cycles, 'q' detach\r\n")
	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case 'q':
			fmt.Print("\r\nmonitor detached\r\n")
			return
		case 'p':
			fmt.Printf("\r\nPC=$%04X\r\n", sys.PC())
		case 'd':
			line := sys.Disassemble(sys.PC())
			fmt.Printf("\r\n%04X  %-8s  %s\r\n", line.Address, line.HexBytes, line.Mnemonic)
		case 'r':
			fmt.Printf("\r\ncycles=%d\r\n", sys.MasterCycle())
		}
	}
}
