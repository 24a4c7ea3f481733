package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for
// deterministic seeding. Rule evaluation takes it as an injected
// dependency so runs are reproducible under test.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform draw from [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Float64Between returns a uniform draw from [lo, hi]. When the range
// is empty it returns lo.
func (r *RNG) Float64Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
