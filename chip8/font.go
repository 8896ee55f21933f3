package chip8

// FontBase is the memory address the built-in hex font glyphs are
// loaded at.
const FontBase = 0x000

// fontGlyphSize is the number of bytes per glyph.
const fontGlyphSize = 5

// font is the widely published CHIP-8 hex digit font: 16 glyphs, 5
// bytes each, one row per pixel of a 4x5 sprite. LD F, Vx points I at
// the glyph for a digit; this exact bit pattern is load-bearing, since
// ROMs draw it straight to the framebuffer.
var font = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// fontAddr returns the address of the glyph for a hex digit 0..=F.
func fontAddr(digit uint8) uint16 {
	return FontBase + uint16(digit&0xF)*fontGlyphSize
}
