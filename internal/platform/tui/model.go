package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

// Model is the Bubble Tea model for a running show.
type Model struct {
	show     *fireworks.Show
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	quitting bool
}

// NewModel creates a model that renders the show into a grid of the configured size.
// The show's key hint is taken from the key bindings.
func NewModel(show *fireworks.Show, cfg core.RuntimeConfig) Model {
	keys := DefaultKeyMap()
	show.SetHint(keys.Hint())
	return Model{
		show:   show,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   keys,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
// Quit is observed here and takes effect before the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.show.TogglePause()
	}
	return m, nil
}

// handleTick steps the simulation once and schedules the next tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.show.Step(time.Time(msg))
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.show.Render(m.screen)
	return RenderScreen(m.screen)
}

// Backend runs shows through Bubble Tea.
type Backend struct{}

// Name returns the backend identifier.
func (Backend) Name() string {
	return "tea"
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "Bubble Tea renderer with lipgloss colors (default)"
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (Backend) Run(ctx context.Context, show *fireworks.Show, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(show, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		// Cancellation is a normal way to end the show
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("tea", func() registry.Backend {
		return Backend{}
	})
}
