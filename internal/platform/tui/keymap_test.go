package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state snake.State
		want  core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.StateRunning, core.CommandUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, snake.StateRunning, core.CommandDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.StateRunning, core.CommandLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, snake.StateRunning, core.CommandRight},
		{"w", runeKey('w'), snake.StateRunning, core.CommandUp},
		{"a", runeKey('a'), snake.StateRunning, core.CommandLeft},
		{"s", runeKey('s'), snake.StateRunning, core.CommandDown},
		{"d", runeKey('d'), snake.StateRunning, core.CommandRight},
		{"enter in menu", tea.KeyMsg{Type: tea.KeyEnter}, snake.StateMenu, core.CommandStart},
		{"enter after game over", tea.KeyMsg{Type: tea.KeyEnter}, snake.StateGameOver, core.CommandAcknowledge},
		{"unbound", runeKey('x'), snake.StateRunning, core.CommandNone},
		{"quit is not a game command", runeKey('q'), snake.StateRunning, core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Command(tt.msg, tt.state); got != tt.want {
				t.Errorf("Command(%q) = %s, expected %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelpPerState(t *testing.T) {
	km := DefaultKeyMap()

	for _, state := range []snake.State{snake.StateMenu, snake.StateRunning, snake.StateGameOver} {
		bindings := km.helpFor(state)
		if len(bindings) == 0 {
			t.Errorf("no help for state %s", state)
		}
		last := bindings[len(bindings)-1]
		if last.Help().Key != "q" {
			t.Errorf("help for %s should end with quit, got %q", state, last.Help().Key)
		}
	}

	if got := km.helpFor(snake.StateGameOver)[0].Help().Desc; got != "menu" {
		t.Errorf("enter help after game over = %q, expected menu", got)
	}
	// The shared binding keeps its own help text
	if got := km.Enter.Help().Desc; got != "start" {
		t.Errorf("Enter help = %q, expected start", got)
	}
}
