// snake is a single-player grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play a game
//	snake scores             - Show recorded runs and the high score
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--backend <name>    - High score backend: sqlite or file
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagBackend  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic game: steer the snake
with the arrow keys, eat apples to grow, and avoid the walls and your own tail.

Available commands:
  play     - Play the game (default)
  scores   - View recorded runs and the high score
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --tick 100ms
  snake scores --limit 20
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "High score backend: sqlite or file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
