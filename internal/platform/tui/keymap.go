package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// KeyMap defines the key bindings of a running show.
type KeyMap struct {
	Quit  key.Binding
	Pause key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause}
}

// Hint renders the short help as plain text for the top row of the grid.
func (k KeyMap) Hint() string {
	h := help.New()
	// Unstyled: the screen colors the hint itself
	h.Styles = help.Styles{}
	return "keys: " + h.ShortHelpView(k.ShortHelp())
}

// MapKey translates a key message to a show action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
