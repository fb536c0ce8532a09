package fireworks

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// Default key hint drawn on the top row.
const (
	hudText    = "keys: q quit  p pause"
	pausedText = "  [paused]"
)

// Stats summarises a show for the history store.
type Stats struct {
	Ticks           int // Simulation ticks stepped
	Launched        int // Fireworks spawned
	Explosions      int // Primary bursts
	SecondaryBursts int // Secondary bursts triggered
	PeakParticles   int // Most live particles seen after a tick
	PeakFireworks   int // Most active fireworks seen after a tick
}

// Show drives the simulation: it spawns fireworks at random intervals,
// advances them every tick and prunes the finished ones.
type Show struct {
	cfg       config.Config
	rng       core.Rand
	logger    *log.Logger
	hint      string
	fireworks []*Firework
	lastSpawn time.Time
	paused    bool
	stats     Stats
}

// NewShow creates an empty show. The spawn timer starts at now.
// A nil logger discards output.
func NewShow(rng core.Rand, cfg config.Config, logger *log.Logger, now time.Time) *Show {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Show{
		cfg:       cfg,
		rng:       rng,
		logger:    logger,
		hint:      hudText,
		fireworks: make([]*Firework, 0, cfg.Show.MaxFireworks),
		lastSpawn: now,
	}
}

// Step advances the show by one tick: spawn check, update every firework in
// order, then prune finished ones. A paused show does nothing.
func (s *Show) Step(now time.Time) {
	if s.paused {
		return
	}
	s.stats.Ticks++

	if len(s.fireworks) < s.cfg.Show.MaxFireworks {
		delay := time.Duration(s.rng.IntRange(s.cfg.Show.SpawnMinMS, s.cfg.Show.SpawnMaxMS)) * time.Millisecond
		if now.Sub(s.lastSpawn) > delay {
			s.launch()
			s.lastSpawn = now
		}
	}

	for _, f := range s.fireworks {
		wasExploded, stage := f.Exploded(), f.Stage()
		f.Update()

		if !wasExploded && f.Exploded() {
			s.stats.Explosions++
			s.logger.Debug("explosion", "x", f.explosionX, "y", f.explosionY, "particles", f.ParticleCount())
		}
		if f.Stage() > stage {
			s.stats.SecondaryBursts++
			s.logger.Debug("secondary burst", "particles", f.ParticleCount())
		}
	}

	active := s.fireworks[:0]
	for _, f := range s.fireworks {
		if !f.Done() {
			active = append(active, f)
		}
	}
	// Drop references to pruned fireworks
	for i := len(active); i < len(s.fireworks); i++ {
		s.fireworks[i] = nil
	}
	s.fireworks = active

	s.stats.PeakFireworks = core.Max(s.stats.PeakFireworks, len(s.fireworks))
	s.stats.PeakParticles = core.Max(s.stats.PeakParticles, s.ParticleCount())
}

// launch spawns a new firework at ground level.
func (s *Show) launch() {
	f := NewFirework(s.rng, s.cfg.Grid, s.cfg.Show)
	s.fireworks = append(s.fireworks, f)
	s.stats.Launched++
	s.logger.Debug("launch", "size", f.size, "x", f.x, "target", f.explosionY, "stages", f.maxStages)
}

// Render clears dst and draws the key hint and every active firework.
func (s *Show) Render(dst *core.Screen) {
	dst.Clear()

	hud := s.hint
	if s.paused {
		hud += pausedText
	}
	dst.DrawText(0, 0, hud, core.ColorWhite)

	for _, f := range s.fireworks {
		f.Draw(dst)
	}
}

// SetHint replaces the key hint drawn on the top row.
func (s *Show) SetHint(hint string) {
	s.hint = hint
}

// TogglePause freezes or resumes the simulation.
func (s *Show) TogglePause() {
	s.paused = !s.paused
}

// Paused reports whether the show is frozen.
func (s *Show) Paused() bool {
	return s.paused
}

// Fireworks returns the active fireworks in update order.
func (s *Show) Fireworks() []*Firework {
	return s.fireworks
}

// ParticleCount returns the number of live particles across all fireworks.
func (s *Show) ParticleCount() int {
	n := 0
	for _, f := range s.fireworks {
		n += f.ParticleCount()
	}
	return n
}

// Stats returns the counters collected so far.
func (s *Show) Stats() Stats {
	return s.stats
}
