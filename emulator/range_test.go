package emulator

import (
	"testing"
)

func TestRangeContains(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(FONT_RANGE.Contains(0x000))
	assert(FONT_RANGE.Contains(0x04f))
	assert(!FONT_RANGE.Contains(0x050))

	assert(PROGRAM_RANGE.Contains(PROGRAM_START))
	assert(PROGRAM_RANGE.Contains(0xfff))
	assert(!PROGRAM_RANGE.Contains(PROGRAM_START - 1))
}

func TestRangeOffset(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(PROGRAM_RANGE.Offset(PROGRAM_START) == 0)
	assert(PROGRAM_RANGE.Offset(0x204) == 4)
	assert(FONT_RANGE.Offset(FontGlyphAddress(1)) == FONT_GLYPH_SIZE)
}
