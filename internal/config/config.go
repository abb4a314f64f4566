// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Snake   BodyConfig    `yaml:"snake"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
}

// GridConfig defines the playfield geometry.
// Width and Height of 0 mean "fit the terminal".
type GridConfig struct {
	Unit   int `yaml:"unit"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BodyConfig defines snake parameters.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the game clock.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// StorageConfig selects where the high score is persisted.
type StorageConfig struct {
	Backend  string `yaml:"backend"`
	DBPath   string `yaml:"db_path"`
	FilePath string `yaml:"file_path"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Unit <= 0 {
		errs = append(errs, fmt.Errorf("grid.unit must be positive, got %d", c.Grid.Unit))
	}
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		errs = append(errs, fmt.Errorf("grid size must not be negative, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be at least 1, got %d", c.Snake.InitialLength))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			errs = append(errs, errors.New("storage.db_path is required for the sqlite backend"))
		}
	case BackendFile:
		if c.Storage.FilePath == "" {
			errs = append(errs, errors.New("storage.file_path is required for the file backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.backend %q", c.Storage.Backend))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
