package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestWriteRGBA(t *testing.T) {
	fb := NewFramebuffer()
	fb.DrawSprite(0, 0, []byte{0x80})

	dst := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	writeRGBA(fb, dst)

	// the lit pixel is white, its dark neighbor keeps full alpha
	assert.Equal(t, byte(255), dst[0])
	assert.Equal(t, byte(255), dst[1])
	assert.Equal(t, byte(255), dst[2])
	assert.Equal(t, byte(255), dst[3])
	assert.Equal(t, byte(0), dst[4])
	assert.Equal(t, byte(255), dst[7])
}

func TestNewRendererConfig(t *testing.T) {
	config := NewRendererConfig()
	assert.Equal(t, DEFAULT_WINDOW_SCALE, config.Scale)
	assert.Equal(t, WINDOW_TITLE, config.Title)
}
