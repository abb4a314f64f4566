package snake

import (
	"math/rand"
	"testing"
)

func TestSpawnFoodWithinBounds(t *testing.T) {
	grid := mustGrid(110, 80, 25) // Partial cells on both axes
	e := NewEngine(grid, rand.New(rand.NewSource(999)))

	for i := 0; i < 1000; i++ {
		food := e.SpawnFood()
		if !grid.InBounds(food) {
			t.Fatalf("food spawned out of bounds at %v", food)
		}
		if food.X%grid.Unit != 0 || food.Y%grid.Unit != 0 {
			t.Fatalf("food %v is not aligned to the grid", food)
		}
		col, row := grid.Index(food)
		if col >= grid.Cols() || row >= grid.Rows() {
			t.Fatalf("food %v outside the %dx%d grid", food, grid.Cols(), grid.Rows())
		}
	}
}

func TestSpawnFoodCoversGrid(t *testing.T) {
	grid := mustGrid(3, 2, 1)
	e := NewEngine(grid, rand.New(rand.NewSource(1)))

	seen := make(map[Cell]bool)
	for i := 0; i < 500; i++ {
		seen[e.SpawnFood()] = true
	}
	if len(seen) != grid.Capacity() {
		t.Errorf("food reached %d cells, expected all %d", len(seen), grid.Capacity())
	}
}

func TestSelfCollision(t *testing.T) {
	b := NewBody(100, 1, 5)
	// Head shares a cell with index 3
	placeBody(b, []Cell{{6, 5}, {5, 5}, {5, 6}, {6, 5}, {6, 4}}, HeadingRight)

	if !SelfCollides(b) {
		t.Error("head on a body cell should collide")
	}

	e := NewEngine(mustGrid(20, 20, 1), &seqRNG{})
	out := e.Evaluate(b, Cell{0, 0})
	if out.Collision != CollisionSelf {
		t.Errorf("Collision = %s, expected self", out.Collision)
	}
}

func TestEatingIgnoresUnusedSlot(t *testing.T) {
	b := NewBody(100, 1, 3)
	// Slot 4 still holds the origin from Initialize
	placeBody(b, []Cell{{1, 0}, {2, 0}, {3, 0}}, HeadingLeft)
	b.Advance(HeadingLeft)

	e := NewEngine(mustGrid(20, 20, 1), &seqRNG{vals: []int{9, 9}})
	out := e.Evaluate(b, Cell{0, 0})

	if !out.Ate {
		t.Fatal("head on the food should eat it")
	}
	if out.Collision != CollisionNone {
		t.Errorf("Collision = %s, expected none when eating at the origin", out.Collision)
	}
	if b.At(4) != (Cell{3, 0}) {
		t.Errorf("slot past the new tail = %v, expected {3 0}", b.At(4))
	}
}

func TestNoSelfCollisionOnStraightLine(t *testing.T) {
	b := NewBody(100, 1, 4)
	placeBody(b, []Cell{{5, 5}, {4, 5}, {3, 5}, {2, 5}}, HeadingRight)

	if SelfCollides(b) {
		t.Error("straight snake should not collide with itself")
	}
}

func TestBoundaryCollision(t *testing.T) {
	const unit = 25
	grid := mustGrid(100, 75, unit)

	tests := []struct {
		name string
		head Cell
	}{
		{"left edge", Cell{-unit, 25}},
		{"right edge", Cell{100, 25}},
		{"top edge", Cell{25, -unit}},
		{"bottom edge", Cell{25, 75}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(grid.Capacity(), unit, 2)
			placeBody(b, []Cell{tc.head, {25, 25}}, HeadingRight)

			e := NewEngine(grid, &seqRNG{})
			out := e.Evaluate(b, Cell{0, 0})
			if out.Collision != CollisionBoundary {
				t.Errorf("Collision = %s, expected boundary", out.Collision)
			}
		})
	}
}

func TestEvaluateEatsFood(t *testing.T) {
	grid := mustGrid(10, 10, 1)
	b := NewBody(grid.Capacity(), 1, 3)
	placeBody(b, []Cell{{5, 5}, {4, 5}, {3, 5}}, HeadingRight)

	e := NewEngine(grid, &seqRNG{vals: []int{7, 8}})
	out := e.Evaluate(b, Cell{5, 5})

	if !out.Ate {
		t.Fatal("head on food should eat it")
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", b.Len())
	}
	if out.Food != (Cell{7, 8}) {
		t.Errorf("new food = %v, expected {7 8}", out.Food)
	}
	if out.Collision != CollisionNone {
		t.Errorf("Collision = %s, expected none", out.Collision)
	}
}

func TestEvaluateWithoutFood(t *testing.T) {
	grid := mustGrid(10, 10, 1)
	b := NewBody(grid.Capacity(), 1, 3)
	placeBody(b, []Cell{{5, 5}, {4, 5}, {3, 5}}, HeadingRight)

	e := NewEngine(grid, &seqRNG{})
	out := e.Evaluate(b, Cell{1, 1})

	if out.Ate {
		t.Error("should not eat food elsewhere")
	}
	if out.Food != (Cell{1, 1}) {
		t.Errorf("food moved to %v without being eaten", out.Food)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", b.Len())
	}
}
