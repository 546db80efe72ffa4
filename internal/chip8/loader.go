package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Load copies the program image into memory at the origin address and
// points the program counter at it.
func (m *Machine) Load(origin uint16, program []byte) error {
	if int(origin) >= MemorySize || origin%OpcodeSize != 0 {
		return fmt.Errorf("%w: $%04X", ErrInvalidOrigin, origin)
	}
	if available := MemorySize - int(origin); len(program) > available {
		return fmt.Errorf("%w: %d bytes at $%03X, %d bytes available",
			ErrProgramTooLarge, len(program), origin, available)
	}

	copy(m.state.Memory[origin:], program)
	m.state.PC = origin
	m.timers.restart()

	m.logger.Info("Program loaded",
		log.Hex("origin", origin),
		log.Int("size", len(program)))
	return nil
}

// LoadStandard loads the program at the standard origin 0x200.
func (m *Machine) LoadStandard(program []byte) error {
	return m.Load(ProgramStart, program)
}

// LoadETI loads the program at the ETI 660 origin 0x600.
func (m *Machine) LoadETI(program []byte) error {
	return m.Load(ETIProgramStart, program)
}
