//go:build !headless

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retrosilicon/c64core"
)

const (
	c64ScreenWidth  = 403
	c64ScreenHeight = 312
)

// machineGame implements ebiten.Game, presenting the driver's latest
// framebuffer snapshot and forwarding host key events into the core's
// keyboard matrix.
type machineGame struct {
	sys   *c64core.System
	drv   *driver
	scale int

	pixels []uint32
	rgba   []byte
	img    *ebiten.Image
}

func runVideo(sys *c64core.System, drv *driver, scale int) error {
	g := &machineGame{
		sys:    sys,
		drv:    drv,
		scale:  scale,
		pixels: make([]uint32, c64ScreenWidth*c64ScreenHeight),
		rgba:   make([]byte, c64ScreenWidth*c64ScreenHeight*4),
		img:    ebiten.NewImage(c64ScreenWidth, c64ScreenHeight),
	}
	ebiten.SetWindowSize(c64ScreenWidth*scale, c64ScreenHeight*scale)
	ebiten.SetWindowTitle("c64run")
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(g)
}

func (g *machineGame) Update() error {
	g.handleKeys()
	return nil
}

func (g *machineGame) Draw(screen *ebiten.Image) {
	g.drv.snapshotFramebuffer(g.pixels)
	for i, px := range g.pixels {
		g.rgba[i*4] = byte(px >> 16)
		g.rgba[i*4+1] = byte(px >> 8)
		g.rgba[i*4+2] = byte(px)
		g.rgba[i*4+3] = 0xFF
	}
	g.img.WritePixels(g.rgba)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

func (g *machineGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c64ScreenWidth * g.scale, c64ScreenHeight * g.scale
}

func (g *machineGame) handleKeys() {
	for key, rc := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			g.sys.PressKey(rc.row, rc.col)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.sys.ReleaseKey(rc.row, rc.col)
		}
	}
}
