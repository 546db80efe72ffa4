package chip8

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/log"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixedRandom byte

func (r fixedRandom) Byte() byte {
	return byte(r)
}

// newTestMachine returns a machine with a stopped clock and the program
// words loaded at the standard origin.
func newTestMachine(t *testing.T, words ...uint16) (*Machine, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Unix(0, 0)}
	m := New(log.NewTestLogger(t), Options{
		Clock:  clock,
		Random: fixedRandom(0xA5),
	})
	if err := m.LoadStandard(program(words...)); err != nil {
		t.Fatalf("loading program: %v", err)
	}
	return m, clock
}

// program encodes instruction words big endian.
func program(words ...uint16) []byte {
	data := make([]byte, 0, len(words)*OpcodeSize)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	return data
}

func step(t *testing.T, m *Machine) StepResult {
	t.Helper()

	result, err := m.Step()
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	return result
}
