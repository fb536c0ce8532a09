package fireworks

import (
	"github.com/vovakirdan/tui-fireworks/internal/config"
)

// lowRand returns the low end of every range and a fixed Chance result,
// making every random branch predictable.
type lowRand struct {
	chance bool
}

func (lowRand) IntRange(lo, hi int) int { return lo }

func (lowRand) FloatRange(lo, hi float64) float64 { return lo }

func (r lowRand) Chance(p float64) bool { return r.chance }

// testGrid returns the default 160x60 grid.
func testGrid() config.GridConfig {
	return config.Default().Grid
}

// testShowConfig returns the default show bounds.
func testShowConfig() config.ShowConfig {
	return config.Default().Show
}
