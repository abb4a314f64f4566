package core

import "time"

// DefaultTickInterval is the fixed simulation period.
const DefaultTickInterval = 75 * time.Millisecond

// RuntimeConfig contains configuration passed to a session at creation.
// Sessions use this to size the play area and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}
