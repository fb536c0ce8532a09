package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

// Backend runs shows directly on a tcell screen.
type Backend struct{}

// Name returns the backend identifier.
func (Backend) Name() string {
	return "tcell"
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "tcell renderer with a fixed-rate poll/step/render loop"
}

// Run opens the terminal and loops until quit or ctx is cancelled.
func (Backend) Run(ctx context.Context, show *fireworks.Show, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	t, err := Open(screen)
	if err != nil {
		return err
	}
	defer t.Close()

	return Loop(ctx, t, show, cfg)
}

// Loop runs the show at cfg.TickRate. Each iteration polls input for at most
// one tick, steps the simulation, renders and flushes the frame, then sleeps
// for whatever is left of the tick.
func Loop(ctx context.Context, t *Terminal, show *fireworks.Show, cfg core.RuntimeConfig) error {
	tick := time.Second / time.Duration(cfg.TickRate)
	frame := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	for {
		start := time.Now()
		if ctx.Err() != nil {
			return nil
		}

		switch t.PollAction(tick) {
		case core.ActionQuit:
			return nil
		case core.ActionPause:
			show.TogglePause()
		}

		show.Step(time.Now())
		show.Render(frame)
		t.Flush(frame)

		if rest := tick - time.Since(start); rest > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(rest):
			}
		}
	}
}

func init() {
	registry.Register("tcell", func() registry.Backend {
		return Backend{}
	})
}
