//go:build !headless

package main

import "github.com/hajimehoshi/ebiten/v2"

// rowCol names a keyboard matrix position (§4.3).
type rowCol struct{ row, col int }

// keyMap translates host keys into the C64 keyboard matrix's row/column
// coordinates, following the standard C64 matrix layout. It covers the
// full alphanumeric block plus the handful of keys demos and BASIC
// programs depend on; PETSCII-only keys with no direct host equivalent
// (the C= key's graphics-character shift state, RESTORE) are left for a
// future mapping table since they need more than a 1:1 key translation.
var keyMap = map[ebiten.Key]rowCol{
	ebiten.Key1: {7, 0}, ebiten.Key2: {7, 3}, ebiten.Key3: {1, 0},
	ebiten.Key4: {1, 3}, ebiten.Key5: {2, 0}, ebiten.Key6: {2, 3},
	ebiten.Key7: {3, 0}, ebiten.Key8: {3, 3}, ebiten.Key9: {4, 0},
	ebiten.Key0: {4, 3},

	ebiten.KeyQ: {7, 6}, ebiten.KeyW: {1, 1}, ebiten.KeyE: {1, 6},
	ebiten.KeyR: {2, 1}, ebiten.KeyT: {2, 6}, ebiten.KeyY: {3, 1},
	ebiten.KeyU: {3, 6}, ebiten.KeyI: {4, 1}, ebiten.KeyO: {4, 6},
	ebiten.KeyP: {5, 1},

	ebiten.KeyA: {1, 2}, ebiten.KeyS: {1, 5}, ebiten.KeyD: {2, 2},
	ebiten.KeyF: {2, 5}, ebiten.KeyG: {3, 2}, ebiten.KeyH: {3, 5},
	ebiten.KeyJ: {4, 2}, ebiten.KeyK: {4, 5}, ebiten.KeyL: {5, 2},

	ebiten.KeyZ: {1, 4}, ebiten.KeyX: {2, 7}, ebiten.KeyC: {2, 4},
	ebiten.KeyV: {3, 7}, ebiten.KeyB: {3, 4}, ebiten.KeyN: {4, 7},
	ebiten.KeyM: {4, 4},

	ebiten.KeySpace:     {7, 4},
	ebiten.KeyEnter:     {0, 1},
	ebiten.KeyBackspace: {0, 0},
	ebiten.KeyShiftLeft: {1, 7},
	ebiten.KeyShiftRight: {6, 4},
	ebiten.KeyControlLeft: {7, 2},
	ebiten.KeyEscape:    {7, 7},
	ebiten.KeyArrowDown: {0, 7},
	ebiten.KeyArrowRight: {0, 2},
	ebiten.KeyComma:     {5, 7},
	ebiten.KeyPeriod:    {5, 4},
	ebiten.KeySlash:     {6, 7},
	ebiten.KeySemicolon: {6, 2},
	ebiten.KeyMinus:     {5, 3},
	ebiten.KeyEqual:     {6, 5},
}
