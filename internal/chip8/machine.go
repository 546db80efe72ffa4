// Package chip8 implements a CHIP-8 virtual machine.
//
// The machine executes one instruction per Step call and exposes its display
// buffer, redraw request and halt state to a host that drives it. The host
// writes the keypad state before stepping and reads the display afterwards.
package chip8

import (
	"time"

	"github.com/retroenv/retrogolib/log"
)

// State contains the complete mutable state of the machine.
type State struct {
	Memory [MemorySize]byte
	PC     uint16              // address of the next instruction
	V      [RegisterCount]byte // general purpose registers V0-VF
	I      uint16              // index register
	Stack  [StackSize]uint16
	SP     uint8 // index of the most recently pushed stack entry, 0 if empty

	DelayTimer byte
	SoundTimer byte

	Keys    [KeyCount]bool
	Display Display

	HighRes     bool
	NeedsRedraw bool
	Halted      bool
}

// Options configures a machine.
type Options struct {
	// HighResolution selects the 128x64 display mode instead of 64x32.
	HighResolution bool
	// TimerInterval is the minimum time between two timer decrements,
	// DefaultTimerInterval is used if not set.
	TimerInterval time.Duration
	// Random provides the bytes for the RND instruction, a time seeded
	// source is used if not set.
	Random RandomSource
	// Clock gates the timer decrements, the wall clock is used if not set.
	Clock Clock
	// Trace logs every executed instruction at debug level.
	Trace bool
}

// Machine is a CHIP-8 virtual machine. It is not safe for concurrent use.
type Machine struct {
	logger  *log.Logger
	options Options
	random  RandomSource
	timers  timerGovernor

	state State
}

// New returns a new machine with the font preloaded and all other state
// zeroed.
func New(logger *log.Logger, options Options) *Machine {
	random := options.Random
	if random == nil {
		random = NewRandomSource(0)
	}

	m := &Machine{
		logger:  logger,
		options: options,
		random:  random,
		timers:  newTimerGovernor(options.Clock, options.TimerInterval),
	}
	m.Reset()
	return m
}

// Reset returns the machine to its constructed state. The loaded program
// is removed, the configuration is kept.
func (m *Machine) Reset() {
	m.state = State{
		HighRes: m.options.HighResolution,
	}
	copy(m.state.Memory[:], font[:])
	m.timers.restart()
}

// SetKey sets the pressed state of a keypad key.
func (m *Machine) SetKey(key int, pressed bool) error {
	if key < 0 || key >= KeyCount {
		return ErrInvalidKey
	}
	m.state.Keys[key] = pressed
	return nil
}

// SetKeys replaces the pressed state of all keypad keys.
func (m *Machine) SetKeys(keys [KeyCount]bool) {
	m.state.Keys = keys
}

// Keys returns the current keypad state.
func (m *Machine) Keys() [KeyCount]bool {
	return m.state.Keys
}

// Display returns a copy of the display buffer.
func (m *Machine) Display() Display {
	return m.state.Display
}

// HighResolution returns whether the display is in 128x64 mode.
func (m *Machine) HighResolution() bool {
	return m.state.HighRes
}

// SetHighResolution switches the display mode. It is meant to be called
// before execution starts.
func (m *Machine) SetHighResolution(highRes bool) {
	m.options.HighResolution = highRes
	m.state.HighRes = highRes
}

// NeedsRedraw returns whether the display changed since the host last
// consumed a frame.
func (m *Machine) NeedsRedraw() bool {
	return m.state.NeedsRedraw
}

// ClearRedraw acknowledges that the host consumed the current frame.
func (m *Machine) ClearRedraw() {
	m.state.NeedsRedraw = false
}

// Halted returns whether the machine stopped executing.
func (m *Machine) Halted() bool {
	return m.state.Halted
}

// ProgramCounter returns the address of the next instruction.
func (m *Machine) ProgramCounter() uint16 {
	return m.state.PC
}

// Registers returns a copy of the general purpose registers.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.state.V
}

// IndexRegister returns the index register.
func (m *Machine) IndexRegister() uint16 {
	return m.state.I
}

// StackPointer returns the index of the most recently pushed stack entry.
func (m *Machine) StackPointer() uint8 {
	return m.state.SP
}

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() byte {
	return m.state.DelayTimer
}

// SoundTimer returns the sound timer.
func (m *Machine) SoundTimer() byte {
	return m.state.SoundTimer
}

// Memory returns a copy of the memory.
func (m *Machine) Memory() [MemorySize]byte {
	return m.state.Memory
}
