// Package term provides the tcell backend: a classic loop that polls input,
// steps the show, renders a frame and sleeps for the rest of the tick.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// styles maps core.Color to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorBlack:   tcell.StyleDefault.Foreground(tcell.ColorBlack),
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	core.ColorMagenta: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

func styleFor(c core.Color) tcell.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}

// Terminal wraps a tcell screen as the show's input source and renderer sink.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// Open initializes the screen and starts reading its events.
// The caller must Close the terminal to restore the tty.
func Open(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards screen events until the screen is finalized.
func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollAction waits at most timeout for a key and maps it to an action.
// Resize and other events yield ActionNone; the grid does not follow the terminal.
func (t *Terminal) PollAction(timeout time.Duration) core.Action {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return mapEvent(ev)
	case <-timer.C:
		return core.ActionNone
	}
}

func mapEvent(ev tcell.Event) core.Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return core.ActionNone
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return core.ActionQuit
		case 'p', 'P', ' ':
			return core.ActionPause
		}
	}
	return core.ActionNone
}

// Flush copies every cell of the frame to the terminal and shows it.
func (t *Terminal) Flush(frame *core.Screen) {
	for y := range frame.Height() {
		for x := range frame.Width() {
			cell := frame.GetCell(x, y)
			t.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	t.screen.Show()
}

// Close stops the event reader and restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}
