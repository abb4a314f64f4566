package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagTick time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the game at the menu.

Controls:
  Enter          - Start a run / return to the menu after game over
  Arrows/WASD    - Steer
  Tab            - Scoreboard (from the menu)
  Ctrl+S         - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C       - Quit

Examples:
  snake play
  snake play --tick 120ms
  snake play --backend file
  snake play --seed 42 --log-file ~/.snake/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Time between moves (overrides config, e.g. 75ms)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the grid fits the first frame
	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	p := openPersistence(cfg.Storage, logger)
	defer p.Close()

	logger.Info("starting", "backend", cfg.Storage.Backend, "tick", cfg.Timing.TickInterval, "width", runtime.ScreenW, "height", runtime.ScreenH)

	return tui.Run(tui.Options{
		Config:        cfg,
		Store:         p.HighScore,
		Recorder:      p.Recorder,
		Runs:          p.Runs,
		Logger:        logger,
		RuntimeConfig: runtime,
	})
}
