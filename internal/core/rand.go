package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness source injected into every part of the simulation.
// Ranges are half-open: [lo, hi).
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi). Returns lo when hi <= lo.
	IntRange(lo, hi int) int

	// FloatRange returns a uniform float in [lo, hi). Returns lo when hi <= lo.
	FloatRange(lo, hi float64) float64

	// Chance returns true with probability p.
	Chance(p float64) bool
}

// stdRand adapts *rand.Rand to the Rand interface.
type stdRand struct {
	r *rand.Rand
}

// NewRand creates a seeded randomness source.
// A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &stdRand{r: rand.New(rand.NewSource(seed))}
}

func (s *stdRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo)
}

func (s *stdRand) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

func (s *stdRand) Chance(p float64) bool {
	return s.r.Float64() < p
}
