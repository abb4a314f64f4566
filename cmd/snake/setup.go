package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagTick > 0 {
		cfg.Timing.TickInterval = flagTick
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. With no --log-file, logs go to
// fallback, which may be io.Discard when the TUI owns the terminal.
// The returned func closes the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	cleanup := func() {}
	if flagLogFile != "" {
		path, err := storage.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, cleanup, nil
}

// persistence holds the stores selected by the storage config.
type persistence struct {
	HighScore snake.HighScoreStore
	Recorder  snake.RunRecorder
	Runs      tui.RunSource
	close     func() error
}

func (p persistence) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// openPersistence opens the configured backend. A backend that cannot be
// opened is reported and the game runs without persistence.
func openPersistence(cfg config.StorageConfig, logger *log.Logger) persistence {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := storage.NewFileStore(cfg.FilePath)
		if err != nil {
			logger.Warn("high score file unavailable", "error", err)
			return persistence{}
		}
		logger.Debug("using high score file", "path", fs.Path())
		return persistence{HighScore: fs}

	default:
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("scores database unavailable", "error", err)
			// Continue without storage - game still works
			return persistence{}
		}
		return persistence{
			HighScore: store,
			Recorder:  store,
			Runs:      store,
			close:     store.Close,
		}
	}
}
