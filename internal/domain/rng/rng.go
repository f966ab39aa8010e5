// Package rng defines the randomness port injected into every stochastic
// component, so tests can seed or script the draw sequence.
package rng

import (
	"math/rand"
	"time"
)

// Source provides the uniform draws the engine consumes. Implementations
// need not be safe for concurrent use; each orchestrator owns its source.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// source wraps a seeded math/rand generator.
type source struct {
	r *rand.Rand
}

// New returns a deterministic Source for the given seed.
func New(seed int64) Source {
	return &source{r: rand.New(rand.NewSource(seed))} //nolint:gosec // simulation randomness, not crypto
}

// NewFromTime returns a Source seeded from the wall clock.
func NewFromTime() Source {
	return New(time.Now().UnixNano())
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}

func (s *source) IntN(n int) int {
	return s.r.Intn(n)
}

func (s *source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Range returns a uniform draw in [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// IntRange returns a uniform integer draw in [lo, hi] inclusive.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
