package snake

// Collision describes what ended a run.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSelf
	CollisionBoundary
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionSelf:
		return "self"
	case CollisionBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating one tick.
type Outcome struct {
	Ate       bool
	Food      Cell // Food position after the tick
	Collision Collision
}

// Engine decides food consumption and collisions after each move.
type Engine struct {
	grid Grid
	rng  RNG
}

// NewEngine creates an engine that places food on grid using rng.
func NewEngine(grid Grid, rng RNG) Engine {
	return Engine{grid: grid, rng: rng}
}

// SpawnFood returns a uniformly random cell anywhere on the grid.
// The snake's position is not taken into account.
func (e Engine) SpawnFood() Cell {
	return e.grid.CellAt(e.rng.Intn(e.grid.Cols()), e.rng.Intn(e.grid.Rows()))
}

// Evaluate runs the consumption check and then the collision checks for a
// body that has just advanced. Eating grows the body and respawns the food.
func (e Engine) Evaluate(b *Body, food Cell) Outcome {
	out := Outcome{Food: food}

	if b.Head() == food {
		b.Grow()
		out.Ate = true
		out.Food = e.SpawnFood()
	}

	switch {
	case SelfCollides(b):
		out.Collision = CollisionSelf
	case !e.grid.InBounds(b.Head()):
		out.Collision = CollisionBoundary
	}
	return out
}

// SelfCollides reports whether the head shares a cell with any of the indices
// 1..Len(), the slot just past the tail included.
func SelfCollides(b *Body) bool {
	head := b.Head()
	for i := b.Len(); i > 0; i-- {
		if b.At(i) == head {
			return true
		}
	}
	return false
}
