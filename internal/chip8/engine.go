package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

// StepResult describes the outcome of a single step.
type StepResult uint8

const (
	// Advanced means the instruction was executed.
	Advanced StepResult = iota
	// Waiting means the instruction waits for a key press and will be
	// executed again by the next step.
	Waiting
	// Halted means the machine stopped, further steps have no effect.
	Halted
)

func (r StepResult) String() string {
	switch r {
	case Advanced:
		return "advanced"
	case Waiting:
		return "waiting"
	case Halted:
		return "halted"
	default:
		return fmt.Sprintf("StepResult(%d)", uint8(r))
	}
}

// instruction contains the decoded fields of an instruction word.
type instruction struct {
	word uint16
	x    byte   // bits 8-11, register index
	y    byte   // bits 4-7, register index
	n    byte   // bits 0-3, nibble literal
	kk   byte   // bits 0-7, byte literal
	nnn  uint16 // bits 0-11, address literal
}

func decode(word uint16) instruction {
	return instruction{
		word: word,
		x:    byte(word>>8) & 0x0F,
		y:    byte(word>>4) & 0x0F,
		n:    byte(word) & 0x0F,
		kk:   byte(word),
		nnn:  word & AddressMask,
	}
}

// family returns the opcode family, the high nibble of the instruction word.
func (ins instruction) family() byte {
	return byte(ins.word >> 12)
}

// mnemonic returns the assembler mnemonic of an instruction word or an
// empty string if the word does not match a known instruction.
func mnemonic(word uint16) string {
	for _, op := range chip8cpu.Opcodes[int(word>>12)] {
		if op.Instruction != nil && op.Info.Mask&word == op.Info.Value {
			return op.Instruction.Name
		}
	}
	return ""
}

// Step fetches, decodes and executes a single instruction. Errors halt the
// machine and are returned as *InstructionError, except for a program
// counter outside of memory which is returned wrapped directly.
func (m *Machine) Step() (StepResult, error) {
	s := &m.state
	if s.Halted {
		return Halted, nil
	}

	address := s.PC
	if int(address)+1 >= MemorySize {
		s.Halted = true
		return Halted, fmt.Errorf("%w: $%04X", ErrProgramCounter, address)
	}
	word := uint16(s.Memory[address])<<8 | uint16(s.Memory[address+1])

	if m.options.Trace {
		m.logger.Debug("Executing",
			log.Hex("pc", address),
			log.Hex("opcode", word),
			log.String("instruction", mnemonic(word)))
	}

	result, err := m.execute(decode(word))
	if err != nil {
		s.Halted = true
		return Halted, &InstructionError{
			Address:  address,
			Opcode:   word,
			Mnemonic: mnemonic(word),
			Err:      err,
		}
	}

	switch result {
	case Halted:
		s.Halted = true
		m.logger.Warn("Machine halted",
			log.Hex("pc", address),
			log.Hex("opcode", word))
		return Halted, nil

	case Advanced:
		s.PC += OpcodeSize
	}

	m.timers.check(s)
	return result, nil
}

// Run executes up to n steps and stops early when the machine halts or an
// error occurs. It returns the number of executed steps.
func (m *Machine) Run(n int) (int, error) {
	for i := range n {
		if m.state.Halted {
			return i, nil
		}
		if _, err := m.Step(); err != nil {
			return i + 1, err
		}
	}
	return n, nil
}

// RunUntilRedraw executes steps until the display requests a redraw, the
// machine halts or limit steps were executed. It returns the number of
// executed steps.
func (m *Machine) RunUntilRedraw(limit int) (int, error) {
	for i := range limit {
		if m.state.Halted || m.state.NeedsRedraw {
			return i, nil
		}
		if _, err := m.Step(); err != nil {
			return i + 1, err
		}
	}
	return limit, nil
}

// execute dispatches the instruction to the handler of its family.
func (m *Machine) execute(ins instruction) (StepResult, error) {
	s := &m.state

	switch ins.family() {
	case 0x0:
		return m.executeSystem(ins)
	case 0x1:
		s.PC = ins.nnn
	case 0x2:
		if err := m.call(ins.nnn); err != nil {
			return Advanced, err
		}
	case 0x3:
		m.skipIf(s.V[ins.x] == ins.kk)
	case 0x4:
		m.skipIf(s.V[ins.x] != ins.kk)
	case 0x5:
		if ins.n != 0 {
			return Advanced, ErrUnknownOpcode
		}
		m.skipIf(s.V[ins.x] == s.V[ins.y])
	case 0x6:
		s.V[ins.x] = ins.kk
	case 0x7:
		s.V[ins.x] += ins.kk
	case 0x8:
		return Advanced, m.executeALU(ins)
	case 0x9:
		if ins.n != 0 {
			return Advanced, ErrUnknownOpcode
		}
		m.skipIf(s.V[ins.x] != s.V[ins.y])
	case 0xA:
		s.I = ins.nnn
	case 0xB:
		s.PC = ins.nnn + uint16(s.V[0])
	case 0xC:
		s.V[ins.x] = m.random.Byte() & ins.kk
	case 0xD:
		m.draw(s.V[ins.x], s.V[ins.y], ins.n)
	case 0xE:
		return Advanced, m.executeKeySkip(ins)
	case 0xF:
		return m.executeMisc(ins)
	}
	return Advanced, nil
}
