// Command c64run wires the emulation core to a window, an audio device,
// and the host keyboard: none of which the core package touches directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagBasicROM  string
	flagKernalROM string
	flagCharROM   string
	flagModel     string
	flagScale     int
	flagTrace     bool
	flagMonitor   bool
)

func main() {
	root := &cobra.Command{
		Use:   "c64run",
		Short: "Run a Commodore 64 ROM image set against the c64core emulation core",
		RunE:  runMachine,
	}

	root.Flags().StringVar(&flagBasicROM, "basic", "", "path to the BASIC ROM image (8KiB)")
	root.Flags().StringVar(&flagKernalROM, "kernal", "", "path to the KERNAL ROM image (8KiB)")
	root.Flags().StringVar(&flagCharROM, "chargen", "", "path to the character ROM image (4KiB)")
	root.Flags().StringVar(&flagModel, "sid-model", "6581", "SID model: 6581 or 8580")
	root.Flags().IntVar(&flagScale, "scale", 2, "integer window scale factor")
	root.Flags().BoolVar(&flagTrace, "trace", false, "print a disassembly trace line per executed instruction")
	root.Flags().BoolVar(&flagMonitor, "monitor", false, "attach an interactive raw-mode debug console on stdin")
	_ = root.MarkFlagRequired("basic")
	_ = root.MarkFlagRequired("kernal")
	_ = root.MarkFlagRequired("chargen")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "c64run:", err)
		os.Exit(1)
	}
}
