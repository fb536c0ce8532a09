package fireworks

import "github.com/vovakirdan/tui-fireworks/internal/core"

// Palette holds the concrete colors a firework resolves its color classes to.
type Palette struct {
	Primary   core.Color
	Secondary core.Color
	Tertiary  core.Color
}

// tertiaryChance is the probability a firework keeps its third color.
// Otherwise the tertiary slot repeats the secondary one.
const tertiaryChance = 0.7

// schemes are the bright color triples a firework may draw from.
var schemes = [...]Palette{
	{core.ColorRed, core.ColorYellow, core.ColorMagenta},
	{core.ColorRed, core.ColorWhite, core.ColorRed},
	{core.ColorGreen, core.ColorCyan, core.ColorYellow},
	{core.ColorGreen, core.ColorYellow, core.ColorGreen},
	{core.ColorBlue, core.ColorCyan, core.ColorWhite},
	{core.ColorBlue, core.ColorMagenta, core.ColorCyan},
	{core.ColorYellow, core.ColorWhite, core.ColorGreen},
	{core.ColorYellow, core.ColorRed, core.ColorCyan},
	{core.ColorMagenta, core.ColorRed, core.ColorBlue},
	{core.ColorMagenta, core.ColorWhite, core.ColorYellow},
	{core.ColorCyan, core.ColorBlue, core.ColorWhite},
	{core.ColorYellow, core.ColorMagenta, core.ColorCyan},
}

// RandomPalette picks one of the fixed schemes uniformly.
func RandomPalette(rng core.Rand) Palette {
	p := schemes[rng.IntRange(0, len(schemes))]
	if !rng.Chance(tertiaryChance) {
		p.Tertiary = p.Secondary
	}
	return p
}

// Resolve maps a color class to its concrete color.
func (p Palette) Resolve(c ColorClass) core.Color {
	switch c {
	case ClassSecondary:
		return p.Secondary
	case ClassTertiary:
		return p.Tertiary
	default:
		return p.Primary
	}
}
