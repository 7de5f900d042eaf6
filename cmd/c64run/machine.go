package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/retrosilicon/c64core"
	"github.com/spf13/cobra"
)

func runMachine(cmd *cobra.Command, args []string) error {
	basic, err := os.ReadFile(flagBasicROM)
	if err != nil {
		return fmt.Errorf("reading BASIC ROM: %w", err)
	}
	kernal, err := os.ReadFile(flagKernalROM)
	if err != nil {
		return fmt.Errorf("reading KERNAL ROM: %w", err)
	}
	chargen, err := os.ReadFile(flagCharROM)
	if err != nil {
		return fmt.Errorf("reading character ROM: %w", err)
	}

	model := c64core.SIDModel6581
	if strings.EqualFold(flagModel, "8580") {
		model = c64core.SIDModel8580
	}

	sys := c64core.NewSystem(model)
	sys.LoadROMs(basic, kernal, chargen)

	if flagTrace {
		sys.TraceHook = func(pc uint16, opcode byte, cycles int) {
			line := sys.Disassemble(pc)
			fmt.Printf("%04X  %-8s  %s\n", line.Address, line.HexBytes, line.Mnemonic)
		}
	}

	drv := newDriver(sys)
	go drv.run()
	defer drv.Close()

	if flagMonitor {
		go runMonitor(sys, drv)
	}

	audio, err := newAudioPlayer(drv)
	if err != nil {
		return fmt.Errorf("starting audio: %w", err)
	}
	defer audio.Close()
	audio.Start()

	return runVideo(sys, drv, flagScale)
}
