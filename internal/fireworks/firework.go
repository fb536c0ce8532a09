package fireworks

import (
	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// Visual characters for the ascent phase.
const (
	RocketChar = '↑'
	TrailChar  = '.'
)

// Firework lifetime parameters.
const (
	minMaxAge       = 25 // Explosion-phase cap, inclusive
	maxMaxAge       = 45 // Explosion-phase cap, exclusive
	maxStageChoices = 2  // Stages are drawn from [1, maxStageChoices]
	stageDelay      = 15 // Ticks per stage before a secondary burst may fire
)

// Firework is one launch-to-extinguish unit. It rises one row per tick until
// it reaches its explosion height, then bursts into particles and optionally
// fires one secondary burst from a still-bright fragment.
type Firework struct {
	x, y       int // Current rocket position while ascending
	explosionX int
	explosionY int
	size       int
	palette    Palette

	exploded  bool
	particles []Particle
	age       int // Ticks since explosion
	maxAge    int // Explosion-phase cap
	trail     Trail

	stage     int // 0 = primary burst, 1 = secondary burst fired
	maxStages int // 1 or 2

	rng core.Rand
}

// NewFirework creates a firework at ground level with randomized size,
// launch column, explosion height, palette and lifetime.
func NewFirework(rng core.Rand, grid config.GridConfig, show config.ShowConfig) *Firework {
	size := rng.IntRange(show.MinFireworkSize, show.MaxFireworkSize+1)

	// Keep large bursts away from the edges, but never reserve more than a
	// quarter of the grid on each side.
	hMargin := core.Min(size*10, grid.Width/4)
	vMargin := core.Min(size*5, grid.Height/4)

	x := rng.IntRange(hMargin, grid.Width-hMargin)
	explosionY := rng.IntRange(vMargin, grid.Height/2)

	return &Firework{
		x:          x,
		y:          grid.Height,
		explosionX: x,
		explosionY: explosionY,
		size:       size,
		palette:    RandomPalette(rng),
		maxStages:  rng.IntRange(1, maxStageChoices+1),
		maxAge:     rng.IntRange(minMaxAge, maxMaxAge),
		rng:        rng,
	}
}

// Update advances the firework by one tick.
// A firework that is Done is left untouched.
func (f *Firework) Update() {
	if f.Done() {
		return
	}

	if !f.exploded {
		if f.y > f.explosionY {
			f.trail.Push(core.Point{X: f.x, Y: f.y})
			f.y--
		} else {
			f.explode()
		}
		return
	}

	f.age++

	// A second burst fires once most fragments have burnt out
	if f.stage < f.maxStages-1 &&
		len(f.particles) < f.size &&
		f.age > stageDelay*(f.stage+1) {
		f.stage++
		f.secondaryBurst()
	}

	for i := range f.particles {
		f.particles[i].Advance()
	}

	// Remove expired particles in place
	alive := f.particles[:0]
	for _, p := range f.particles {
		if !p.Expired() {
			alive = append(alive, p)
		}
	}
	f.particles = alive
}

// explode switches to the exploded state and emits the primary burst.
func (f *Firework) explode() {
	f.exploded = true
	f.particles = GeneratePrimary(f.rng, float64(f.explosionX), float64(f.explosionY), f.size)
}

// secondaryBurst adds a smaller burst centred on a random bright particle.
// Nothing happens if no particle is bright enough.
func (f *Firework) secondaryBurst() {
	cx, cy, ok := PickBurstCenter(f.rng, f.particles)
	if !ok {
		return
	}
	f.particles = append(f.particles, GenerateSecondary(f.rng, cx, cy, f.size)...)
}

// Done reports whether the firework has finished: it exploded and either
// every particle burnt out or the explosion-phase cap was reached.
func (f *Firework) Done() bool {
	return f.exploded && (len(f.particles) == 0 || f.age >= f.maxAge)
}

// Exploded reports whether the firework has left the ascent phase.
func (f *Firework) Exploded() bool {
	return f.exploded
}

// Stage returns the number of secondary bursts triggered so far.
func (f *Firework) Stage() int {
	return f.stage
}

// ParticleCount returns the number of live particles.
func (f *Firework) ParticleCount() int {
	return len(f.particles)
}

// Size returns the firework size.
func (f *Firework) Size() int {
	return f.size
}

// Position returns the current rocket position while ascending.
func (f *Firework) Position() core.Point {
	return core.Point{X: f.x, Y: f.y}
}

// Target returns the explosion position.
func (f *Firework) Target() core.Point {
	return core.Point{X: f.explosionX, Y: f.explosionY}
}

// Draw renders the rocket and its trail, or the live particles once exploded.
func (f *Firework) Draw(dst *core.Screen) {
	if !f.exploded {
		dst.Set(f.x, f.y, RocketChar, f.palette.Primary)

		for i, p := range f.trail.Points() {
			c := f.palette.Secondary
			if i <= 1 {
				c = f.palette.Tertiary
			}
			dst.Set(p.X, p.Y, TrailChar, c)
		}
		return
	}

	for _, p := range f.particles {
		x, y := int(p.X), int(p.Y)

		// Column 0 and row 0 stay clear; row 0 carries the key hint
		if x > 0 && y > 0 && y < dst.Height() {
			dst.Set(x, y, p.Symbol, f.palette.Resolve(p.Class))
		}
	}
}
