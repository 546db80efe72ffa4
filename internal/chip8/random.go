package chip8

import (
	"math/rand"
	"time"
)

// RandomSource provides the random bytes for the RND instruction.
type RandomSource interface {
	Byte() byte
}

// mathRandom is a RandomSource backed by math/rand.
type mathRandom struct {
	rng *rand.Rand
}

// NewRandomSource returns a pseudo random source with the given seed.
// A seed of 0 seeds the source from the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // not used for security
	}
}

func (r *mathRandom) Byte() byte {
	return byte(r.rng.Intn(256))
}
