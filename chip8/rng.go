package chip8

import "math/rand"

// MathRng is the default Rng, backed by math/rand. It is not
// cryptographically meaningful and doesn't need to be: RND exists for
// game logic like enemy placement, not security.
type MathRng struct {
	r *rand.Rand
}

// NewMathRng creates a MathRng seeded from the given value. Two
// MathRngs created with the same seed produce the same byte sequence.
func NewMathRng(seed int64) *MathRng {
	return &MathRng{r: rand.New(rand.NewSource(seed))}
}

// NextByte implements Rng.
func (m *MathRng) NextByte() uint8 {
	return uint8(m.r.Intn(256))
}
