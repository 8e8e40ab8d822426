package emulator

import "image/color"

const (
	DEFAULT_WINDOW_SCALE = 10 // host pixels per display pixel
	WINDOW_TITLE         = "gochip8"
)

// Colors used to render the display
var (
	COLOR_ON  = color.RGBA{255, 255, 255, 255} // lit pixel
	COLOR_OFF = color.RGBA{0, 0, 0, 255}       // dark pixel
)

// Renderer settings
type RendererConfig struct {
	Scale int    // window scale factor
	Title string // window title
}

// Returns a RendererConfig with the default settings
func NewRendererConfig() RendererConfig {
	return RendererConfig{
		Scale: DEFAULT_WINDOW_SCALE,
		Title: WINDOW_TITLE,
	}
}

// Converts the display contents to RGBA bytes. `dst` has to hold
// DISPLAY_WIDTH*DISPLAY_HEIGHT*4 bytes
func writeRGBA(fb *Framebuffer, dst []byte) {
	for idx, pixel := range fb.Pixels {
		clr := COLOR_OFF
		if pixel != 0 {
			clr = COLOR_ON
		}
		dst[idx*4+0] = clr.R
		dst[idx*4+1] = clr.G
		dst[idx*4+2] = clr.B
		dst[idx*4+3] = clr.A
	}
}
