package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fireworks/internal/core"
)

func TestRenderScreenKeepsRuns(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(1, 0, "abc", core.ColorRed)
	s.Set(4, 2, '✦', core.ColorCyan)

	out := RenderScreen(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "abc") {
		t.Error("same-colored cells should render as one run")
	}
	if !strings.Contains(out, "✦") {
		t.Error("expected particle glyph in output")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorBlack, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorWhite,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}
