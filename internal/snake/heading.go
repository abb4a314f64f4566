package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Heading represents the snake's movement direction.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// Delta returns the unit step of the heading on each axis.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// headingFor maps a directional command to a heading.
func headingFor(cmd core.Command) (Heading, bool) {
	switch cmd {
	case core.CommandUp:
		return HeadingUp, true
	case core.CommandDown:
		return HeadingDown, true
	case core.CommandLeft:
		return HeadingLeft, true
	case core.CommandRight:
		return HeadingRight, true
	default:
		return 0, false
	}
}
