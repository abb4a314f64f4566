package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoHighScore is returned by a HighScoreStore that has nothing saved yet.
var ErrNoHighScore = errors.New("snake: no high score saved")

// RNG supplies uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Ticker drives Machine.Tick at a fixed period.
// The machine starts it when a run begins and stops it on collision.
type Ticker interface {
	Start()
	Stop()
}

// HighScoreStore loads and saves the single high score integer.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RunSummary describes one finished run.
type RunSummary struct {
	RunID      string
	Score      int
	Length     int
	Ticks      uint64
	Collision  Collision
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the run lasted.
func (r RunSummary) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunRecorder keeps a history of finished runs.
type RunRecorder interface {
	RecordRun(run RunSummary) error
}

// PersistenceError reports a failed high score load or save.
// It never blocks a state transition.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snake: cannot %s high score: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type nopTicker struct{}

func (nopTicker) Start() {}
func (nopTicker) Stop()  {}
