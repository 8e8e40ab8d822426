package emulator

const (
	FONT_GLYPH_SIZE  = 5  // Bytes per glyph, one byte per pixel row
	FONT_GLYPH_COUNT = 16 // Glyphs 0..F
)

// Builtin hexadecimal font. Each glyph is 5 rows of 8 pixels, only the
// high nibble of every row is used
var FontData = [FONT_GLYPH_SIZE * FONT_GLYPH_COUNT]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Returns the address of the font glyph for `digit`. Only the low
// nibble of `digit` is used
func FontGlyphAddress(digit uint8) uint16 {
	return FONT_RANGE.Start + uint16(digit&0xf)*FONT_GLYPH_SIZE
}
