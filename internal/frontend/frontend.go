// Package frontend contains the host side of the virtual machine: the
// windowed renderer with keypad input and the frame rasterizers it shares
// with the headless mode.
package frontend

import (
	"errors"
	"image/color"
)

// Frame dimensions of the rendered image. Low resolution frames draw every
// logical pixel as a 2x2 block.
const (
	FrameWidth  = 128
	FrameHeight = 64
)

// maxStepsPerFrame limits the steps executed while waiting for a display
// change, so programs that never draw keep the window responsive.
const maxStepsPerFrame = 10000

// ErrNoDisplay is returned by Run when the binary was built without
// window support.
var ErrNoDisplay = errors.New("built without display support, use headless mode")

// Palette contains the colors of unlit and lit pixels.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

// DefaultPalette draws blue pixels on a black background.
var DefaultPalette = Palette{
	Background: color.RGBA{A: 0xFF},
	Foreground: color.RGBA{B: 0xFF, A: 0xFF},
}

// Config configures the windowed frontend.
type Config struct {
	Title string
	// Scale is the window size multiplier of the frame size.
	Scale int
	// CyclesPerFrame is the number of instructions executed per frame,
	// 0 executes until the program changes the display.
	CyclesPerFrame int
	Palette        Palette
}
