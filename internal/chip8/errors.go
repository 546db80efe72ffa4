package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramTooLarge is returned when a program image does not fit into
	// memory from the chosen origin.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrInvalidOrigin is returned for a load origin outside of memory or not
	// aligned to an instruction boundary.
	ErrInvalidOrigin = errors.New("invalid load origin")
	// ErrProgramCounter is returned when an instruction would be fetched
	// beyond the end of memory.
	ErrProgramCounter = errors.New("program counter out of bounds")
	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrUnknownOpcode is returned for instruction words that do not decode
	// to a known instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrInvalidKey is returned when addressing a key outside of the keypad.
	ErrInvalidKey = errors.New("invalid key")
)

// InstructionError describes the instruction that failed to execute.
type InstructionError struct {
	Address  uint16
	Opcode   uint16
	Mnemonic string
	Err      error
}

func (e *InstructionError) Error() string {
	if e.Mnemonic == "" {
		return fmt.Sprintf("executing $%04X at $%03X: %s", e.Opcode, e.Address, e.Err)
	}
	return fmt.Sprintf("executing %s ($%04X) at $%03X: %s", e.Mnemonic, e.Opcode, e.Address, e.Err)
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}
