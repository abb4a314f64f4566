// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the ticker run that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// Ticker implements snake.Ticker on top of tea.Tick.
//
// Bubble Tea has no way to cancel a scheduled tick, so every Start and Stop
// bumps a generation number and ticks from an older generation are dropped.
// All methods run on the Bubble Tea update loop.
type Ticker struct {
	interval time.Duration
	gen      uint64
	active   bool
	armed    bool // Start was called and the first tick is not scheduled yet
}

var _ snake.Ticker = (*Ticker)(nil)

// NewTicker creates a stopped ticker with the given period.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start begins a new tick generation.
func (t *Ticker) Start() {
	t.gen++
	t.active = true
	t.armed = true
}

// Stop ends the current generation. Ticks already in flight are ignored.
func (t *Ticker) Stop() {
	t.gen++
	t.active = false
	t.armed = false
}

// Active reports whether ticks are being delivered.
func (t *Ticker) Active() bool {
	return t.active
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Accept reports whether msg belongs to the running generation.
func (t *Ticker) Accept(msg TickMsg) bool {
	return t.active && msg.Gen == t.gen
}

// Pending returns the command for the first tick after Start, or nil.
func (t *Ticker) Pending() tea.Cmd {
	if !t.armed {
		return nil
	}
	t.armed = false
	return t.next()
}

// Next returns the command for the tick following an accepted one, or nil
// once the ticker has been stopped.
func (t *Ticker) Next() tea.Cmd {
	if !t.active || t.armed {
		return nil
	}
	return t.next()
}

func (t *Ticker) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}
