package c64core

// c64Palette is the fixed 16-color VIC-II palette (§6), stored as packed
// 0xRRGGBB values with an opaque top byte left zero — the host backend
// decides its own pixel format when copying Framebuffer out.
var c64Palette = [16]uint32{
	0x000000, // black
	0xFFFFFF, // white
	0x68372B, // red
	0x70A4B2, // cyan
	0x6F3D86, // purple
	0x588D43, // green
	0x352879, // blue
	0xB8C76F, // yellow
	0x6F4F25, // orange
	0x433900, // brown
	0x9A6759, // light red
	0x444444, // dark grey
	0x6C6C6C, // grey
	0x9AD284, // light green
	0x6C5EB5, // light blue
	0x959595, // light grey
}
