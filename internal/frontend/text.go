package frontend

import (
	"bufio"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// TextStyle selects the characters used for text frames.
type TextStyle struct {
	Lit   string
	Unlit string
}

// Text styles for terminals and plain outputs.
var (
	BlockStyle = TextStyle{Lit: "█", Unlit: " "}
	ASCIIStyle = TextStyle{Lit: "#", Unlit: "."}
)

// WriteText writes the display as text, one line per logical row.
func WriteText(w io.Writer, display *chip8.Display, highRes bool, style TextStyle) error {
	width, height := chip8.Resolution(highRes)
	buf := bufio.NewWriter(w)

	for y := range height {
		for x := range width {
			s := style.Unlit
			if display.Pixel(x, y, highRes) {
				s = style.Lit
			}
			if _, err := buf.WriteString(s); err != nil {
				return err
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}
