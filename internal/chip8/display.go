package chip8

import "math/bits"

// Display dimensions for both resolution modes.
const (
	LowResWidth   = 64
	LowResHeight  = 32
	HighResWidth  = 128
	HighResHeight = 64

	// DisplayRows is the number of rows of the display buffer.
	DisplayRows = HighResHeight
)

// Row is a 128 pixel wide display row. Column 0 is the most significant bit
// of Hi. In low resolution mode only Hi is used.
type Row struct {
	Hi uint64
	Lo uint64
}

// IsZero returns whether no pixel of the row is lit.
func (r Row) IsZero() bool {
	return r.Hi == 0 && r.Lo == 0
}

func (r Row) xor(o Row) Row {
	return Row{Hi: r.Hi ^ o.Hi, Lo: r.Lo ^ o.Lo}
}

func (r Row) overlaps(o Row) bool {
	return r.Hi&o.Hi != 0 || r.Lo&o.Lo != 0
}

// rotateRight rotates the 128 bit row towards higher column numbers.
func (r Row) rotateRight(n uint) Row {
	n %= 128
	if n >= 64 {
		r.Hi, r.Lo = r.Lo, r.Hi
		n -= 64
	}
	if n == 0 {
		return r
	}
	return Row{
		Hi: r.Hi>>n | r.Lo<<(64-n),
		Lo: r.Lo>>n | r.Hi<<(64-n),
	}
}

// Display is the bitmap buffer written by the draw instructions.
type Display [DisplayRows]Row

// Pixel returns whether the pixel at the logical coordinates is lit.
// Coordinates outside of the active resolution report false.
func (d *Display) Pixel(x, y int, highRes bool) bool {
	width, height := Resolution(highRes)
	if x < 0 || y < 0 || x >= width || y >= height {
		return false
	}
	row := d[y]
	if x < 64 {
		return row.Hi>>(63-uint(x))&1 == 1
	}
	return row.Lo>>(127-uint(x))&1 == 1
}

// Clear turns off all pixels.
func (d *Display) Clear() {
	for i := range d {
		d[i] = Row{}
	}
}

// Resolution returns the logical frame size for the resolution mode.
func Resolution(highRes bool) (width, height int) {
	if highRes {
		return HighResWidth, HighResHeight
	}
	return LowResWidth, LowResHeight
}

// spriteRow positions an 8 pixel sprite row with its leftmost pixel at
// column x, wrapping around the right edge of a row of the given width.
func spriteRow(sprite byte, x, width int) Row {
	if width == LowResWidth {
		return Row{Hi: bits.RotateLeft64(uint64(sprite)<<56, -(x % LowResWidth))}
	}
	return Row{Hi: uint64(sprite) << 56}.rotateRight(uint(x % HighResWidth))
}

// draw XORs an n byte sprite read from the index register address onto the
// display at (x, y). VF is set when a lit pixel is turned off and left
// untouched otherwise.
func (m *Machine) draw(x, y, n byte) {
	s := &m.state
	width, height := Resolution(s.HighRes)

	collision := false
	for i := range int(n) {
		sprite := s.Memory[(int(s.I)+i)&AddressMask]
		data := spriteRow(sprite, int(x), width)

		target := &s.Display[(int(y)+i)%height]
		if target.overlaps(data) {
			collision = true
		}
		*target = target.xor(data)
	}

	if collision {
		s.V[FlagRegister] = 1
	}
	s.NeedsRedraw = true
}
