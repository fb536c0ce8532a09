package fireworks

import (
	"math"

	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// yScale squashes vertical velocity so bursts look round in character
// cells, which are roughly twice as tall as they are wide.
const yScale = 0.4

// Primary burst shape.
const (
	primaryPerSize   = 50   // Particles per unit of firework size
	primaryBaseLines = 8    // Rays = primaryBaseLines + size
	primaryJitter    = 0.05 // Max angle deviation from a ray, radians
	spreadExponent   = 0.7  // Distance factor curve along a ray
)

// Secondary burst shape.
const (
	secondaryPerSize = 20
	secondaryLines   = 6
	secondaryJitter  = 0.1
	brightThreshold  = 0.5 // Minimum brightness for a secondary burst centre
)

var (
	primaryGlyphs   = [...]rune{'─', '·', '•', '∙'}
	secondaryGlyphs = [...]rune{'∙', '·', '.'}
)

// fillGlyph marks the unstructured fill particles of a primary burst.
const fillGlyph = '✦'

// GeneratePrimary creates the main burst of a firework of the given size
// centred at (cx, cy).
//
// Particles are laid out along 8+size evenly spaced rays. Along each ray the
// distance factor (i/n)^0.7 bunches particles near the centre and gives the
// leading edge more speed and a longer life. A fill population of size*50/3
// randomly aimed particles is added for density.
func GeneratePrimary(rng core.Rand, cx, cy float64, size int) []Particle {
	count := size * primaryPerSize
	lines := primaryBaseLines + size
	perLine := count / lines / 2

	particles := make([]Particle, 0, lines*perLine+count/3)

	for l := 0; l < lines; l++ {
		rayAngle := float64(l) / float64(lines) * 2 * math.Pi

		for i := 0; i < perLine; i++ {
			factor := math.Pow(float64(i)/float64(perLine), spreadExponent)
			speed := 0.6 + factor*0.6
			angle := rayAngle + rng.FloatRange(-primaryJitter, primaryJitter)

			particles = append(particles, Particle{
				X:          cx,
				Y:          cy,
				VX:         math.Cos(angle) * speed,
				VY:         math.Sin(angle) * speed * yScale,
				MaxAge:     10 + int(factor*15),
				Brightness: 1,
				Symbol:     primaryGlyphs[i%len(primaryGlyphs)],
				Class:      primaryClass(i % 10),
				Distance:   speed * 0.8,
			})
		}
	}

	for i := 0; i < count/3; i++ {
		angle := rng.FloatRange(0, 2*math.Pi)
		speed := rng.FloatRange(0.3, 0.9)

		particles = append(particles, Particle{
			X:          cx,
			Y:          cy,
			VX:         math.Cos(angle) * speed,
			VY:         math.Sin(angle) * speed * yScale,
			MaxAge:     rng.IntRange(10, 20),
			Brightness: 1,
			Symbol:     fillGlyph,
			Class:      primaryClass(rng.IntRange(0, 10)),
			Distance:   speed,
		})
	}

	return particles
}

// GenerateSecondary creates a smaller burst of 6 rays centred at (cx, cy).
// It is slower, shorter lived and leans toward the secondary color.
func GenerateSecondary(rng core.Rand, cx, cy float64, size int) []Particle {
	perLine := size * secondaryPerSize / secondaryLines

	particles := make([]Particle, 0, secondaryLines*perLine)

	for l := 0; l < secondaryLines; l++ {
		rayAngle := float64(l) / float64(secondaryLines) * 2 * math.Pi

		for j := 0; j < perLine; j++ {
			factor := math.Pow(float64(j)/float64(perLine), spreadExponent)
			speed := 0.3 + factor*0.3
			angle := rayAngle + rng.FloatRange(-secondaryJitter, secondaryJitter)

			particles = append(particles, Particle{
				X:          cx,
				Y:          cy,
				VX:         math.Cos(angle) * speed,
				VY:         math.Sin(angle) * speed * yScale,
				MaxAge:     5 + int(factor*10),
				Brightness: 1,
				Symbol:     secondaryGlyphs[j%len(secondaryGlyphs)],
				Class:      secondaryClass(j % 10),
				Distance:   speed,
			})
		}
	}

	return particles
}

// PickBurstCenter chooses the position of a random particle that is still
// brighter than the secondary threshold. ok is false when none qualifies.
func PickBurstCenter(rng core.Rand, particles []Particle) (x, y float64, ok bool) {
	bright := make([]int, 0, len(particles))
	for i := range particles {
		if particles[i].Brightness > brightThreshold {
			bright = append(bright, i)
		}
	}
	if len(bright) == 0 {
		return 0, 0, false
	}

	p := particles[bright[rng.IntRange(0, len(bright))]]
	return p.X, p.Y, true
}

// primaryClass splits buckets 0-9 as 60% primary, 30% secondary, 10% tertiary.
func primaryClass(bucket int) ColorClass {
	switch {
	case bucket <= 5:
		return ClassPrimary
	case bucket <= 8:
		return ClassSecondary
	default:
		return ClassTertiary
	}
}

// secondaryClass splits buckets 0-9 as 40% secondary, 40% primary, 20% tertiary.
func secondaryClass(bucket int) ColorClass {
	switch {
	case bucket <= 3:
		return ClassSecondary
	case bucket <= 7:
		return ClassPrimary
	default:
		return ClassTertiary
	}
}
