// Package fireworks implements the firework simulation: particle kinematics,
// explosion geometry, the per-firework state machine and the show driver that
// spawns, advances and prunes fireworks on a fixed tick.
//
// Nothing in this package touches the terminal. Drawing goes into a
// core.Screen and randomness comes from an injected core.Rand, so every
// component can be stepped deterministically in tests.
package fireworks

import "github.com/vovakirdan/tui-fireworks/internal/core"

// Particle physics constants, in grid cells per tick.
const (
	Gravity = 0.008 // Added to VY every tick
	Drag    = 0.94  // VX multiplier per tick
)

// ColorClass is a particle's color role, resolved against the owning
// firework's Palette only when drawn.
type ColorClass uint8

const (
	ClassPrimary ColorClass = iota
	ClassSecondary
	ClassTertiary
)

// String returns the class name.
func (c ColorClass) String() string {
	switch c {
	case ClassPrimary:
		return "primary"
	case ClassSecondary:
		return "secondary"
	case ClassTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// Particle is a single explosion fragment.
type Particle struct {
	X, Y       float64 // Position in grid cells
	VX, VY     float64 // Velocity in cells per tick
	Age        int     // Ticks elapsed since creation
	MaxAge     int     // Lifespan in ticks
	Brightness float64 // 1.0 = fresh, 0.0 = burnt out
	Symbol     rune
	Class      ColorClass
	Distance   float64 // Initial speed magnitude, informational only
}

// Advance moves the particle forward one tick.
// Brightness is derived from the age before the increment.
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY

	p.VY += Gravity
	p.VX *= Drag

	p.Brightness = brightnessAt(p.Age, p.MaxAge)

	p.Age++
}

// Expired reports whether the particle has outlived its lifespan.
func (p Particle) Expired() bool {
	return p.Age >= p.MaxAge
}

// brightnessAt returns 1 - 2*(age/maxAge)^2 clamped to [0, 1]:
// a slow initial fade followed by a fast late one.
func brightnessAt(age, maxAge int) float64 {
	if maxAge <= 0 {
		return 0
	}
	ratio := float64(age) / float64(maxAge)
	return core.ClampF(1-ratio*ratio*2, 0, 1)
}
