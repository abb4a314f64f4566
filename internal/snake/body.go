package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DefaultBodyLength is the snake length at the start of every run.
const DefaultBodyLength = 6

// Body is the snake: an ordered, fixed-capacity sequence of cells with the
// head at index 0.
//
// The backing slice holds one slot past the tail. Advance always copies the
// old tail position into that slot, so after Grow the new tail is already in
// place and no cell is inserted.
type Body struct {
	cells         []Cell
	length        int
	initialLength int
	heading       Heading
	unit          int
}

// NewBody creates a body for a grid with the given capacity and unit size.
// The initial length is clamped to [1, capacity].
func NewBody(capacity, unit, initialLength int) *Body {
	capacity = max(capacity, 1)
	b := &Body{
		cells:         make([]Cell, capacity+1),
		initialLength: core.Clamp(initialLength, 1, capacity),
		unit:          unit,
	}
	b.Initialize()
	return b
}

// Initialize collapses every cell onto the origin, resets the length and
// points the snake right.
func (b *Body) Initialize() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	b.length = b.initialLength
	b.heading = HeadingRight
}

// Advance shifts every cell to its predecessor's position, tail first, then
// steps the head one unit in h. The caller is responsible for rejecting
// reversals.
func (b *Body) Advance(h Heading) {
	for i := b.length; i > 0; i-- {
		b.cells[i] = b.cells[i-1]
	}
	b.cells[0] = b.cells[0].Step(h, b.unit)
	b.heading = h
}

// Grow lengthens the snake by one cell, up to the grid capacity. The new
// tail is the position the old tail just left. The slot past it is set to
// that same cell, so the self-collision check that follows compares the head
// against real body cells only.
func (b *Body) Grow() {
	if b.length < b.Capacity() {
		b.length++
		b.cells[b.length] = b.cells[b.length-1]
	}
}

// Head returns the head cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Len returns the current body length.
func (b *Body) Len() int {
	return b.length
}

// Capacity returns the maximum body length.
func (b *Body) Capacity() int {
	return len(b.cells) - 1
}

// Heading returns the heading applied by the last Advance.
func (b *Body) Heading() Heading {
	return b.heading
}

// At returns the cell at index i, where i may be Len() to address the slot
// just past the tail.
func (b *Body) At(i int) Cell {
	return b.cells[i]
}

// Cells returns a copy of the occupied cells, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, b.length)
	copy(out, b.cells[:b.length])
	return out
}
