package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresRecent      bool
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the high score",
	Long: `Display the best recorded runs and the saved high score.

With the file backend only the high score is available.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --recent
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (keeps the high score)")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Storage.Backend == config.BackendFile {
		fs, err := storage.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			return err
		}
		fmt.Println("High Score")
		fmt.Println()
		printHighScore(fs)
		return nil
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.RunEntry
	title := "High Scores"
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	// Display runs
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %-8s  %s\n", "Rank", "Score", "Length", "Ended by", "Time", "Date")
		fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %-8s  %s\n", "----", "-----", "------", "--------", "----", "----")

		for i, r := range runs {
			fmt.Printf("  %-4d  %-6d  %-6d  %-9s  %-8s  %s\n",
				i+1, r.Score, r.Length, r.Collision,
				r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	printHighScore(store)

	if stats, err := store.Stats(); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d, average score: %.1f\n", stats.RunsCount, stats.AvgScore)
	}
	return nil
}

func printHighScore(s snake.HighScoreStore) {
	score, err := s.Load()
	switch {
	case errors.Is(err, snake.ErrNoHighScore):
		fmt.Println("Best: none yet")
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: cannot read high score: %v\n", err)
	default:
		fmt.Printf("Best: %d\n", score)
	}
}
