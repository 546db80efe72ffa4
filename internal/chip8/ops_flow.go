package chip8

// executeSystem handles the 0x0 family. Any word other than CLS and RET is
// treated as the program end sentinel and halts the machine.
func (m *Machine) executeSystem(ins instruction) (StepResult, error) {
	switch ins.word {
	case 0x00E0:
		m.state.Display.Clear()
		m.state.NeedsRedraw = true
		return Advanced, nil

	case 0x00EE:
		return Advanced, m.ret()

	default:
		return Halted, nil
	}
}

// call pushes the address of the call instruction and jumps to the target.
// The engine advances the program counter past the target afterwards, as
// it does for every instruction that writes the program counter.
func (m *Machine) call(address uint16) error {
	s := &m.state
	if int(s.SP) >= StackSize-1 {
		return ErrStackOverflow
	}
	s.SP++
	s.Stack[s.SP] = s.PC
	s.PC = address
	return nil
}

// ret pops the address of the calling instruction into the program counter.
func (m *Machine) ret() error {
	s := &m.state
	if s.SP == 0 {
		return ErrStackUnderflow
	}
	s.PC = s.Stack[s.SP]
	s.SP--
	return nil
}

// skipIf skips the next instruction if the condition is met.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.state.PC += OpcodeSize
	}
}
