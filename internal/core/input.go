package core

// Command is a discrete logical command delivered to a game session.
// Key presses are translated into commands by the platform layer so that
// game logic never sees raw keys.
type Command int

const (
	CommandNone        Command = iota
	CommandUp                  // W, Up arrow, k
	CommandDown                // S, Down arrow, j
	CommandLeft                // A, Left arrow, h
	CommandRight               // D, Right arrow, l
	CommandStart               // Enter, Space in the menu
	CommandAcknowledge         // Enter on the game over screen
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandStart:
		return "Start"
	case CommandAcknowledge:
		return "Acknowledge"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the command steers the snake.
func (c Command) IsDirectional() bool {
	switch c {
	case CommandUp, CommandDown, CommandLeft, CommandRight:
		return true
	default:
		return false
	}
}
