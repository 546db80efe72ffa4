package chip8

// executeKeySkip handles the 0xE family of keypad conditional skips.
// Only the low nibble of Vx selects the key.
func (m *Machine) executeKeySkip(ins instruction) error {
	s := &m.state
	pressed := s.Keys[s.V[ins.x]&0x0F]

	switch ins.kk {
	case 0x9E:
		m.skipIf(pressed)
	case 0xA1:
		m.skipIf(!pressed)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// executeMisc handles the 0xF family of timer, keypad and index register
// operations.
func (m *Machine) executeMisc(ins instruction) (StepResult, error) {
	s := &m.state
	vx := s.V[ins.x]

	switch ins.kk {
	case 0x07:
		s.V[ins.x] = s.DelayTimer
	case 0x0A:
		return m.waitForKey(ins.x), nil
	case 0x15:
		s.DelayTimer = vx
	case 0x18:
		s.SoundTimer = vx
	case 0x1E:
		s.I += uint16(vx)
	case 0x29:
		s.I = uint16(vx) * fontGlyphSize
	case 0x33:
		m.writeMemory(s.I, vx/100)
		m.writeMemory(s.I+1, vx/10%10)
		m.writeMemory(s.I+2, vx%10)
	case 0x55:
		// registers up to but excluding Vx
		for r := range uint16(ins.x) {
			m.writeMemory(s.I+r, s.V[r])
		}
	case 0x65:
		for r := range uint16(ins.x) {
			s.V[r] = s.Memory[(s.I+r)&AddressMask]
		}
	default:
		return Advanced, ErrUnknownOpcode
	}
	return Advanced, nil
}

// waitForKey stores the lowest pressed key in Vx. Without a pressed key the
// instruction is repeated by the next step.
func (m *Machine) waitForKey(x byte) StepResult {
	s := &m.state
	for key, pressed := range s.Keys {
		if pressed {
			s.V[x] = byte(key)
			return Advanced
		}
	}
	return Waiting
}

func (m *Machine) writeMemory(address uint16, value byte) {
	m.state.Memory[address&AddressMask] = value
}
