package frontend

import (
	"github.com/retroenv/retrochip8/internal/chip8"
)

// FrameBufferSize is the size of an RGBA frame in bytes.
const FrameBufferSize = FrameWidth * FrameHeight * 4

// Rasterize renders the display into dst as RGBA pixels of a
// FrameWidth x FrameHeight image. dst must be FrameBufferSize bytes long.
func Rasterize(dst []byte, display *chip8.Display, highRes bool, palette Palette) {
	scale := 2
	if highRes {
		scale = 1
	}

	for y := range FrameHeight {
		for x := range FrameWidth {
			c := palette.Background
			if display.Pixel(x/scale, y/scale, highRes) {
				c = palette.Foreground
			}

			offset := (y*FrameWidth + x) * 4
			dst[offset] = c.R
			dst[offset+1] = c.G
			dst[offset+2] = c.B
			dst[offset+3] = c.A
		}
	}
}
