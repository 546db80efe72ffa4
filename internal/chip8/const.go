package chip8

// Memory layout constants.
//
//	0x000-0x04F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x050-0x1FF: unused interpreter area
//	0x200-0xFFF: program space (0x600-0xFFF for ETI 660 programs)
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 4096

	// AddressMask selects the architecturally meaningful bits of an address.
	AddressMask = 0x0FFF

	// ProgramStart is the standard origin of a program image.
	ProgramStart = 0x200

	// ETIProgramStart is the origin used by programs written for the ETI 660.
	ETIProgramStart = 0x600

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, used for carry, borrow and collision.
	FlagRegister = 0xF

	// StackSize is the number of return address slots. Slot 0 is never
	// written, the stack pointer indexes the most recently pushed entry.
	StackSize = 16

	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16

	// OpcodeSize is the size of an instruction in bytes.
	OpcodeSize = 2
)

// fontGlyphSize is the number of bytes (rows) of a font glyph.
const fontGlyphSize = 5

// font contains the 4x5 pixel glyphs of the hexadecimal digits 0-F.
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
