package chip8

import "time"

// DefaultTimerInterval is the minimum elapsed time between two timer
// decrements, approximating a 60 Hz clock.
const DefaultTimerInterval = 16 * time.Millisecond

// Clock provides the current time to the timer governor.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

// timerGovernor decrements the delay and sound timers at a fixed real time
// cadence, independent of the number of executed instructions.
type timerGovernor struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

func newTimerGovernor(clock Clock, interval time.Duration) timerGovernor {
	if clock == nil {
		clock = wallClock{}
	}
	if interval <= 0 {
		interval = DefaultTimerInterval
	}
	return timerGovernor{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// restart sets the reference point for the next elapsed time check.
func (g *timerGovernor) restart() {
	g.last = g.clock.Now()
}

// check decrements the timers once if at least one interval elapsed since
// the last decrement. It reports whether the timers were decremented.
func (g *timerGovernor) check(s *State) bool {
	now := g.clock.Now()
	if now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now

	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
	return true
}
