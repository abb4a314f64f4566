package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// KeyMap defines the key bindings for the game screen.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Enter      key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message to a game command for the given state.
// Enter starts a run from the menu and acknowledges a finished one.
func (k KeyMap) Command(msg tea.KeyMsg, state snake.State) core.Command {
	switch {
	case key.Matches(msg, k.Up):
		return core.CommandUp
	case key.Matches(msg, k.Down):
		return core.CommandDown
	case key.Matches(msg, k.Left):
		return core.CommandLeft
	case key.Matches(msg, k.Right):
		return core.CommandRight
	case key.Matches(msg, k.Enter):
		if state == snake.StateGameOver {
			return core.CommandAcknowledge
		}
		return core.CommandStart
	}
	return core.CommandNone
}

// helpFor returns the bindings worth showing in the given state.
func (k KeyMap) helpFor(state snake.State) []key.Binding {
	switch state {
	case snake.StateRunning:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
	case snake.StateGameOver:
		enter := k.Enter
		enter.SetHelp("enter", "menu")
		return []key.Binding{enter, k.Screenshot, k.Quit}
	default:
		return []key.Binding{k.Enter, k.Scores, k.Quit}
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.helpFor(snake.StateMenu)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Scores, k.Screenshot, k.Quit},
	}
}
