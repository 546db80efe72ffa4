package chip8

// executeALU handles the 0x8 family of register to register operations.
// The flag register is written before the result register, so VF as the
// destination keeps the result.
func (m *Machine) executeALU(ins instruction) error {
	v := &m.state.V
	vx, vy := v[ins.x], v[ins.y]

	switch ins.n {
	case 0x0:
		v[ins.x] = vy
	case 0x1:
		v[ins.x] = vx | vy
	case 0x2:
		v[ins.x] = vx & vy
	case 0x3:
		v[ins.x] = vx ^ vy
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		v[FlagRegister] = boolToFlag(sum > 0xFF)
		v[ins.x] = byte(sum)
	case 0x5:
		v[FlagRegister] = boolToFlag(vx > vy)
		v[ins.x] = vx - vy
	case 0x6:
		v[FlagRegister] = vx & 0x01
		v[ins.x] = vx >> 1
	case 0x7:
		v[FlagRegister] = boolToFlag(vx < vy)
		v[ins.x] = vx - vy
	case 0xE:
		v[FlagRegister] = (vx & 0x80) >> 7
		v[ins.x] = vx << 1
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
