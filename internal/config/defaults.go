package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
func Default() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Unit: 1,
		},
		Snake: BodyConfig{
			InitialLength: 6,
		},
		Timing: TimingConfig{
			TickInterval: core.DefaultTickInterval,
		},
		Storage: StorageConfig{
			Backend:  BackendSQLite,
			DBPath:   "~/.snake/scores.db",
			FilePath: "~/.snake/highscore.dat",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
