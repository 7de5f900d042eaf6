//go:build headless

package main

import "github.com/retrosilicon/c64core"

// runVideo in headless builds just keeps the process alive while the
// driver goroutine runs, with no window and no keyboard input. It exists
// so c64run can be exercised in environments without a display server.
func runVideo(sys *c64core.System, drv *driver, scale int) error {
	select {}
}
