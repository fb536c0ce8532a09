package core

// RuntimeConfig contains the values a renderer backend resolves once at startup.
// The grid size is fixed for the whole run.
type RuntimeConfig struct {
	ScreenW  int   // Grid width in characters
	ScreenH  int   // Grid height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means seed from the clock
}

// NewRand returns the randomness source for a run seeded from Seed.
func (c RuntimeConfig) NewRand() Rand {
	return NewRand(c.Seed)
}
