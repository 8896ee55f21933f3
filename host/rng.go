package host

import (
	"math/rand"
	"time"
)

// Rng implements chip8.Rng seeded from the host's wall clock, so real
// runs don't replay the same RND sequence every launch the way the
// core package's deterministic default does.
type Rng struct {
	r *rand.Rand
}

// NewRng creates a wall-clock-seeded Rng.
func NewRng() *Rng {
	return &Rng{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NextByte implements chip8.Rng.
func (rg *Rng) NextByte() uint8 {
	return uint8(rg.r.Intn(256))
}
