package snake

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of the session for rendering.
// Cells and Food are only meaningful outside the Menu state.
type Snapshot struct {
	State     State
	Grid      Grid
	Cells     []Cell // Head first
	Food      Cell
	Heading   Heading
	Score     int
	HighScore int
	Ticks     uint64
	RunID     string
	Notice    string // Non-fatal error to show the player, e.g. a failed save
}

// Snapshot returns the current session state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:     m.state,
		Grid:      m.grid,
		Heading:   m.body.Heading(),
		Score:     m.score,
		HighScore: m.highScore,
		Ticks:     m.ticks,
		RunID:     m.runID,
	}
	if m.state != StateMenu {
		snap.Cells = m.body.Cells()
		snap.Food = m.food
	}
	if m.notice != nil {
		snap.Notice = m.notice.Error()
	}
	return snap
}

// Head returns the head cell, or the origin for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Cells) == 0 {
		return Cell{}
	}
	return s.Cells[0]
}

// DebugState returns a string representation of the session.
func (m *Machine) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Tick: %d, Score: %d, High: %d\n", m.state, m.ticks, m.score, m.highScore)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Pending: %s\n", m.body.Len(), m.body.Heading(), m.pending)
	head := m.body.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, m.food.X, m.food.Y)
	return b.String()
}

func formatGrid(g Grid) string {
	return fmt.Sprintf("%dx%d/%d", g.Cols(), g.Rows(), g.Unit)
}
