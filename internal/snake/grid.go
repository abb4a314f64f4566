// Package snake implements the single-player snake game: grid geometry, the
// snake body model, per-tick collision and scoring, and the Menu/Running/GameOver
// state machine. It performs no I/O of its own; rendering, input, timing and
// high-score persistence are reached through small ports.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidGrid is returned when a grid cannot hold a single cell.
var ErrInvalidGrid = errors.New("snake: invalid grid")

// Cell is a grid position in unit-scaled coordinates (grid index * unit).
type Cell struct {
	X, Y int
}

// Step returns the cell one unit away in the given heading.
func (c Cell) Step(h Heading, unit int) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx*unit, Y: c.Y + dy*unit}
}

// Grid translates a display area into a discrete grid of fixed cell size.
type Grid struct {
	Width  int // Display width in coordinate units
	Height int // Display height in coordinate units
	Unit   int // Size of one cell
}

// NewGrid validates the dimensions and returns a grid.
func NewGrid(width, height, unit int) (Grid, error) {
	if unit <= 0 {
		return Grid{}, fmt.Errorf("%w: unit must be positive, got %d", ErrInvalidGrid, unit)
	}
	g := Grid{Width: width, Height: height, Unit: unit}
	if g.Cols() < 1 || g.Rows() < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d with unit %d has no cells", ErrInvalidGrid, width, height, unit)
	}
	return g, nil
}

// Cols returns the number of grid columns.
func (g Grid) Cols() int {
	return g.Width / g.Unit
}

// Rows returns the number of grid rows.
func (g Grid) Rows() int {
	return g.Height / g.Unit
}

// Capacity returns the total number of cells on the grid.
func (g Grid) Capacity() int {
	return g.Cols() * g.Rows()
}

// Bounds returns the display area used for boundary checks.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width, g.Height)
}

// InBounds reports whether the cell lies inside the display area.
func (g Grid) InBounds(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// CellAt returns the cell at the given column and row.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.Unit, Y: row * g.Unit}
}

// Index converts a cell back to its column and row.
func (g Grid) Index(c Cell) (col, row int) {
	return c.X / g.Unit, c.Y / g.Unit
}
