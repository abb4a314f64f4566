// Package storage provides persistence for the snake high score and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded run.
type RunEntry struct {
	ID        int64
	RunID     string
	Score     int
	Length    int
	Ticks     int64
	Collision string
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	RunsCount  int
	BestRun    int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			collision TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the saved high score, or snake.ErrNoHighScore if none exists.
func (s *Store) Load() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, snake.ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// Save stores score as the high score unless a higher one is already saved.
// Sessions sharing the store can therefore never lower it.
func (s *Store) Save(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_score.score`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordRun stores a finished run.
func (s *Store) RecordRun(run snake.RunSummary) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, score, length, ticks, collision, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Score,
		run.Length,
		int64(run.Ticks),
		run.Collision.String(),
		run.Duration().Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// Ensure Store implements the game's persistence ports
var (
	_ snake.HighScoreStore = (*Store)(nil)
	_ snake.RunRecorder    = (*Store)(nil)
)

// TopRuns retrieves the top N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, run_id, score, length, ticks, collision, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the most recent N runs.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, run_id, score, length, ticks, collision, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Score, &e.Length, &e.Ticks, &e.Collision, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.RunsCount, &stats.BestRun, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes the run history. The high score is kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles SQLite datetimes returned as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
