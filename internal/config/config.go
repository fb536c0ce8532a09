// Package config provides YAML-based configuration loading for the show.
// The record is read once at startup and treated as immutable afterwards.
package config

import (
	"errors"
	"fmt"
)

// Config is the full configuration record.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Show    ShowConfig    `yaml:"show"`
	Backend string        `yaml:"backend"` // Renderer backend name ("tea" or "tcell")
	History HistoryConfig `yaml:"history"`
}

// GridConfig defines the character grid the show is drawn into.
type GridConfig struct {
	Width  int `yaml:"width"`  // 0 = current terminal width
	Height int `yaml:"height"` // 0 = current terminal height
	FPS    int `yaml:"fps"`    // Frame clock rate
}

// ShowConfig bounds the spawning and sizing of fireworks.
type ShowConfig struct {
	MaxFireworks    int `yaml:"max_fireworks"`
	MinFireworkSize int `yaml:"min_firework_size"`
	MaxFireworkSize int `yaml:"max_firework_size"`
	SpawnMinMS      int `yaml:"spawn_min_ms"` // Lower bound of the random spawn delay
	SpawnMaxMS      int `yaml:"spawn_max_ms"` // Upper bound (exclusive)
}

// HistoryConfig points at the show history database.
type HistoryConfig struct {
	DBPath string `yaml:"db_path"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the record for values the simulation cannot work with.
// Zero grid dimensions are allowed and mean "use the terminal size".
func (c Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid size %dx%d is negative", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Grid.FPS)
	}
	if c.Show.MaxFireworks <= 0 {
		return fmt.Errorf("%w: max_fireworks must be positive, got %d", ErrInvalid, c.Show.MaxFireworks)
	}
	if c.Show.MinFireworkSize <= 0 {
		return fmt.Errorf("%w: min_firework_size must be positive, got %d", ErrInvalid, c.Show.MinFireworkSize)
	}
	if c.Show.MinFireworkSize > c.Show.MaxFireworkSize {
		return fmt.Errorf("%w: min_firework_size %d exceeds max_firework_size %d",
			ErrInvalid, c.Show.MinFireworkSize, c.Show.MaxFireworkSize)
	}
	if c.Show.SpawnMinMS < 0 || c.Show.SpawnMinMS > c.Show.SpawnMaxMS {
		return fmt.Errorf("%w: spawn window [%d, %d) ms is inverted",
			ErrInvalid, c.Show.SpawnMinMS, c.Show.SpawnMaxMS)
	}
	return nil
}

// WithGridSize returns a copy with zero grid dimensions replaced by w and h.
func (c Config) WithGridSize(w, h int) Config {
	if c.Grid.Width == 0 {
		c.Grid.Width = w
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = h
	}
	return c
}
