package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniform int in [0, n). n must be positive.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Coin reports heads with probability 1/2, drawn as an even value in [0, 100).
func (r *RNG) Coin() bool {
	return r.r.IntN(100)%2 == 0
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
