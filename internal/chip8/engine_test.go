package chip8

import (
	"errors"
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	ins := decode(0xD3A7)
	assert.Equal(t, byte(0xD), ins.family())
	assert.Equal(t, byte(0x3), ins.x)
	assert.Equal(t, byte(0xA), ins.y)
	assert.Equal(t, byte(0x7), ins.n)
	assert.Equal(t, byte(0xA7), ins.kk)
	assert.Equal(t, uint16(0x3A7), ins.nnn)
}

func TestMnemonic(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, chip8cpu.ClsName},
		{0x00EE, chip8cpu.RetName},
		{0x1234, chip8cpu.JpName},
		{0x2345, chip8cpu.CallName},
		{0x6A12, chip8cpu.LdName},
		{0x8124, chip8cpu.AddName},
		{0xD125, chip8cpu.DrwName},
		{0xE19E, chip8cpu.SkpName},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mnemonic(tt.word))
	}
}

func TestLoadImmediate(t *testing.T) {
	for _, kk := range []byte{0x00, 0x01, 0x7F, 0x80, 0xFF} {
		for x := range uint16(RegisterCount) {
			m, _ := newTestMachine(t, 0x6000|x<<8|uint16(kk))
			assert.Equal(t, Advanced, step(t, m))
			assert.Equal(t, kk, m.Registers()[x])
			assert.Equal(t, uint16(ProgramStart+2), m.ProgramCounter())
		}
	}
}

func TestJump(t *testing.T) {
	m, _ := newTestMachine(t, 0x1345)
	step(t, m)
	assert.Equal(t, uint16(0x345+2), m.ProgramCounter())
}

func TestJumpWithOffset(t *testing.T) {
	m, _ := newTestMachine(t, 0x6010, 0xB300)
	step(t, m)
	step(t, m)
	assert.Equal(t, uint16(0x310+2), m.ProgramCounter())
}

func TestCall(t *testing.T) {
	m, _ := newTestMachine(t, 0x2355)
	step(t, m)
	assert.Equal(t, uint16(0x355+2), m.ProgramCounter())
	assert.Equal(t, uint8(1), m.StackPointer())
	assert.Equal(t, uint16(ProgramStart), m.state.Stack[1])
}

func TestCallReturn(t *testing.T) {
	// the call lands behind 0x204 because of the trailing advance
	m, _ := newTestMachine(t, 0x2204, 0x0000, 0x0000, 0x00EE)
	step(t, m)
	assert.Equal(t, uint16(0x206), m.ProgramCounter())

	step(t, m)
	assert.Equal(t, uint16(ProgramStart+2), m.ProgramCounter())
	assert.Equal(t, uint8(0), m.StackPointer())
}

func TestStackBounds(t *testing.T) {
	t.Run("overflow", func(t *testing.T) {
		// calling 0x1FE lands on the call itself again
		m, _ := newTestMachine(t, 0x21FE)
		for range StackSize - 1 {
			step(t, m)
		}
		assert.Equal(t, uint8(StackSize-1), m.StackPointer())

		_, err := m.Step()
		assert.True(t, errors.Is(err, ErrStackOverflow))
		assert.True(t, m.Halted())
	})

	t.Run("underflow", func(t *testing.T) {
		m, _ := newTestMachine(t, 0x00EE)
		result, err := m.Step()
		assert.Equal(t, Halted, result)
		assert.True(t, errors.Is(err, ErrStackUnderflow))
		assert.True(t, m.Halted())
	})
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name   string
		word   uint16
		keys   []int
		wantPC uint16
	}{
		{"skip if equal taken", 0x3333, nil, ProgramStart + 4},
		{"skip if equal not taken", 0x3335, nil, ProgramStart + 2},
		{"skip if not equal taken", 0x4335, nil, ProgramStart + 4},
		{"skip if not equal not taken", 0x4333, nil, ProgramStart + 2},
		{"skip if registers equal taken", 0x5340, nil, ProgramStart + 4},
		{"skip if registers equal not taken", 0x5320, nil, ProgramStart + 2},
		{"skip if registers not equal taken", 0x9320, nil, ProgramStart + 4},
		{"skip if registers not equal not taken", 0x9340, nil, ProgramStart + 2},
		{"skip if key pressed taken", 0xE59E, []int{0x5}, ProgramStart + 4},
		{"skip if key pressed not taken", 0xE59E, []int{0x6}, ProgramStart + 2},
		{"skip if key not pressed taken", 0xE5A1, []int{0x6}, ProgramStart + 4},
		{"skip if key not pressed not taken", 0xE5A1, []int{0x5}, ProgramStart + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine(t, tt.word)
			m.state.V[0x3] = 0x33
			m.state.V[0x4] = 0x33
			m.state.V[0x2] = 0x22
			m.state.V[0x5] = 0x05
			for _, key := range tt.keys {
				assert.NoError(t, m.SetKey(key, true))
			}

			step(t, m)
			assert.Equal(t, tt.wantPC, m.ProgramCounter())
		})
	}
}

func TestHaltSentinel(t *testing.T) {
	for _, word := range []uint16{0x0000, 0x0123, 0x00E1} {
		m, _ := newTestMachine(t, word, 0x6001)

		result, err := m.Step()
		assert.NoError(t, err)
		assert.Equal(t, Halted, result)
		assert.True(t, m.Halted())

		result, err = m.Step()
		assert.NoError(t, err)
		assert.Equal(t, Halted, result)
		assert.Equal(t, uint16(ProgramStart), m.ProgramCounter())
		assert.Equal(t, byte(0), m.Registers()[0])
	}
}

func TestUnknownOpcode(t *testing.T) {
	for _, word := range []uint16{0x5121, 0x8128, 0x912F, 0xE100, 0xF0FF, 0xF130} {
		m, _ := newTestMachine(t, word)

		result, err := m.Step()
		assert.Equal(t, Halted, result)
		assert.True(t, errors.Is(err, ErrUnknownOpcode))
		assert.True(t, m.Halted())

		var insErr *InstructionError
		assert.True(t, errors.As(err, &insErr))
		assert.Equal(t, word, insErr.Opcode)
		assert.Equal(t, uint16(ProgramStart), insErr.Address)
	}
}

func TestProgramCounterOutOfBounds(t *testing.T) {
	m, _ := newTestMachine(t)
	assert.NoError(t, m.Load(MemorySize-2, program(0x6001)))
	step(t, m)

	_, err := m.Step()
	assert.True(t, errors.Is(err, ErrProgramCounter))
	assert.True(t, m.Halted())
}

func TestRun(t *testing.T) {
	m, _ := newTestMachine(t, 0x6001, 0x7001, 0x7001, 0x0000, 0x7001)

	executed, err := m.Run(2)
	assert.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Equal(t, byte(2), m.Registers()[0])

	executed, err = m.Run(10)
	assert.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Equal(t, byte(3), m.Registers()[0])
	assert.True(t, m.Halted())

	executed, err = m.Run(10)
	assert.NoError(t, err)
	assert.Equal(t, 0, executed)
}

func TestRunStopsOnError(t *testing.T) {
	m, _ := newTestMachine(t, 0x6001, 0xF0FF, 0x6002)

	executed, err := m.Run(10)
	assert.True(t, errors.Is(err, ErrUnknownOpcode))
	assert.Equal(t, 2, executed)
	assert.Equal(t, byte(1), m.Registers()[0])
}

func TestRunUntilRedraw(t *testing.T) {
	m, _ := newTestMachine(t, 0x6001, 0x6102, 0xD011, 0x6003)

	executed, err := m.RunUntilRedraw(100)
	assert.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.True(t, m.NeedsRedraw())

	executed, err = m.RunUntilRedraw(100)
	assert.NoError(t, err)
	assert.Equal(t, 0, executed)

	m.ClearRedraw()
	executed, err = m.RunUntilRedraw(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, executed)
	assert.Equal(t, byte(3), m.Registers()[0])
}
