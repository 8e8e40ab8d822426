package emulator

import (
	"strings"
)

const (
	DISPLAY_WIDTH  = 64 // Display width in pixels
	DISPLAY_HEIGHT = 32 // Display height in pixels
)

// Stores the monochrome display contents. Pixels are bytes holding
// 0 or 1, row-major
type Framebuffer struct {
	Pixels [DISPLAY_WIDTH * DISPLAY_HEIGHT]byte // Pixel buffer
	Dirty  bool                                 // True if the contents changed since the last TakeDirty
}

// Returns a new framebuffer instance with all pixels off
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Resets all pixels to off
func (fb *Framebuffer) Clear() {
	for i := 0; i < len(fb.Pixels); i++ {
		fb.Pixels[i] = 0
	}
	fb.Dirty = true
}

// Returns the pixel at `x`,`y`. Coordinates wrap around the display
// edges
func (fb *Framebuffer) Get(x, y int) byte {
	x &= DISPLAY_WIDTH - 1
	y &= DISPLAY_HEIGHT - 1
	return fb.Pixels[y*DISPLAY_WIDTH+x]
}

// XOR-blits a sprite at `x`,`y`. Every byte of `rows` is one row of
// 8 pixels, most significant bit leftmost. Pixels falling off an edge
// wrap around to the opposite one. Returns true if any lit pixel was
// turned off (a collision)
func (fb *Framebuffer) DrawSprite(x, y uint8, rows []byte) bool {
	collided := false
	for row, bits := range rows {
		py := (int(y) + row) & (DISPLAY_HEIGHT - 1)
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) & (DISPLAY_WIDTH - 1)
			idx := py*DISPLAY_WIDTH + px
			if fb.Pixels[idx] != 0 {
				collided = true
			}
			fb.Pixels[idx] ^= 1
		}
	}
	if len(rows) > 0 {
		fb.Dirty = true
	}
	return collided
}

// Returns a copy of the pixel buffer
func (fb *Framebuffer) Snapshot() []byte {
	snapshot := make([]byte, len(fb.Pixels))
	copy(snapshot, fb.Pixels[:])
	return snapshot
}

// Returns the dirty flag and clears it. Lets the renderer skip
// frames where nothing was drawn
func (fb *Framebuffer) TakeDirty() bool {
	dirty := fb.Dirty
	fb.Dirty = false
	return dirty
}

// Renders the display contents as text, one character per pixel
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	for y := 0; y < DISPLAY_HEIGHT; y++ {
		for x := 0; x < DISPLAY_WIDTH; x++ {
			if fb.Get(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
