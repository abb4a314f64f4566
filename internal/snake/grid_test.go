package snake

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		unit          int
		wantErr       bool
		cols, rows    int
	}{
		{"exact multiple", 100, 75, 25, false, 4, 3},
		{"floors partial cells", 110, 80, 25, false, 4, 3},
		{"unit one", 40, 20, 1, false, 40, 20},
		{"zero unit", 100, 100, 0, true, 0, 0},
		{"negative unit", 100, 100, -5, true, 0, 0},
		{"narrower than a cell", 20, 100, 25, true, 0, 0},
		{"empty", 0, 0, 1, true, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.width, tc.height, tc.unit)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidGrid) {
					t.Fatalf("NewGrid() error = %v, expected ErrInvalidGrid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGrid() failed: %v", err)
			}
			if g.Cols() != tc.cols || g.Rows() != tc.rows {
				t.Errorf("grid = %dx%d, expected %dx%d", g.Cols(), g.Rows(), tc.cols, tc.rows)
			}
			if g.Capacity() != tc.cols*tc.rows {
				t.Errorf("Capacity() = %d, expected %d", g.Capacity(), tc.cols*tc.rows)
			}
		})
	}
}

func TestGridInBounds(t *testing.T) {
	g := mustGrid(100, 75, 25)

	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{75, 50}, true},
		{"left of grid", Cell{-25, 0}, false},
		{"right of grid", Cell{100, 0}, false},
		{"above grid", Cell{0, -25}, false},
		{"below grid", Cell{0, 75}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.want {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.want)
			}
		})
	}
}

func TestGridCellAtIndex(t *testing.T) {
	g := mustGrid(100, 75, 25)

	c := g.CellAt(3, 2)
	if c != (Cell{75, 50}) {
		t.Errorf("CellAt(3, 2) = %v, expected {75 50}", c)
	}

	col, row := g.Index(c)
	if col != 3 || row != 2 {
		t.Errorf("Index(%v) = (%d, %d), expected (3, 2)", c, col, row)
	}
}

func TestHeadingOpposite(t *testing.T) {
	pairs := map[Heading]Heading{
		HeadingUp:    HeadingDown,
		HeadingDown:  HeadingUp,
		HeadingLeft:  HeadingRight,
		HeadingRight: HeadingLeft,
	}

	for h, want := range pairs {
		if got := h.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", h, got, want)
		}
		if h.Opposite().Opposite() != h {
			t.Errorf("%s.Opposite().Opposite() should be %s", h, h)
		}
	}
}

func TestCellStep(t *testing.T) {
	c := Cell{50, 50}
	tests := []struct {
		h    Heading
		want Cell
	}{
		{HeadingUp, Cell{50, 25}},
		{HeadingDown, Cell{50, 75}},
		{HeadingLeft, Cell{25, 50}},
		{HeadingRight, Cell{75, 50}},
	}

	for _, tc := range tests {
		if got := c.Step(tc.h, 25); got != tc.want {
			t.Errorf("Step(%s) = %v, expected %v", tc.h, got, tc.want)
		}
	}
}
