package snake

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotInMenu is returned by Resize outside the Menu state.
var ErrNotInMenu = errors.New("snake: grid can only change in the menu")

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Machine owns one game session and is its only writer.
// It is not safe for concurrent use; the platform serializes ticks and
// commands onto a single goroutine.
type Machine struct {
	grid   Grid
	engine Engine
	body   *Body

	state     State
	food      Cell
	score     int
	highScore int
	pending   Heading // Applied on the next tick
	ticks     uint64
	notice    error

	runID     string
	startedAt time.Time

	rng           RNG
	store         HighScoreStore
	recorder      RunRecorder
	ticker        Ticker
	logger        *log.Logger
	now           func() time.Time
	newRunID      func() string
	initialLength int
}

// Option configures a Machine.
type Option func(*Machine)

// WithRNG sets the food placement source.
func WithRNG(rng RNG) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(m *Machine) { m.store = s }
}

// WithRunRecorder sets where finished runs are recorded.
func WithRunRecorder(r RunRecorder) Option {
	return func(m *Machine) { m.recorder = r }
}

// WithTicker sets the ticker the machine starts and stops.
func WithTicker(t Ticker) Option {
	return func(m *Machine) { m.ticker = t }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithInitialLength overrides the starting body length.
func WithInitialLength(n int) Option {
	return func(m *Machine) { m.initialLength = n }
}

// WithClock overrides the time source used for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// NewMachine creates a session in the Menu state and loads the high score.
// A failed or empty load leaves the high score at 0.
func NewMachine(grid Grid, opts ...Option) *Machine {
	m := &Machine{
		grid:          grid,
		state:         StateMenu,
		ticker:        nopTicker{},
		now:           time.Now,
		newRunID:      uuid.NewString,
		initialLength: DefaultBodyLength,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.engine = NewEngine(grid, m.rng)
	m.body = NewBody(grid.Capacity(), grid.Unit, m.initialLength)
	m.loadHighScore()
	return m
}

func (m *Machine) loadHighScore() {
	if m.store == nil {
		return
	}
	score, err := m.store.Load()
	switch {
	case errors.Is(err, ErrNoHighScore):
		m.logger.Debug("no high score saved yet")
	case err != nil:
		m.logger.Warn("high score unavailable, starting from 0", "error", &PersistenceError{Op: "load", Err: err})
	default:
		m.highScore = max(score, 0)
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the apples eaten in the current or last run.
func (m *Machine) Score() int {
	return m.score
}

// HighScore returns the best score known to this session.
func (m *Machine) HighScore() int {
	return m.highScore
}

// Grid returns the play area geometry.
func (m *Machine) Grid() Grid {
	return m.grid
}

// Resize replaces the play area between runs. The high score and the
// configured ports are kept.
func (m *Machine) Resize(grid Grid) error {
	if m.state != StateMenu {
		return ErrNotInMenu
	}
	m.grid = grid
	m.engine = NewEngine(grid, m.rng)
	m.body = NewBody(grid.Capacity(), grid.Unit, m.initialLength)
	m.logger.Debug("grid resized", "grid", formatGrid(grid))
	return nil
}

// Handle applies a command if it is valid for the current state and reports
// whether it had any effect. Invalid commands are ignored.
func (m *Machine) Handle(cmd core.Command) bool {
	switch m.state {
	case StateMenu:
		if cmd == core.CommandStart {
			m.start()
			return true
		}
	case StateRunning:
		if h, ok := headingFor(cmd); ok {
			return m.steer(h)
		}
	case StateGameOver:
		if cmd == core.CommandAcknowledge {
			m.state = StateMenu
			m.notice = nil
			m.logger.Debug("back to menu")
			return true
		}
	}
	return false
}

// steer buffers h for the next tick unless it reverses the heading used by
// the last move. A later valid command in the same tick replaces it.
func (m *Machine) steer(h Heading) bool {
	if h == m.body.Heading().Opposite() {
		return false
	}
	m.pending = h
	return true
}

func (m *Machine) start() {
	m.food = m.engine.SpawnFood()
	m.body.Initialize()
	m.pending = m.body.Heading()
	m.score = 0
	m.ticks = 0
	m.notice = nil
	m.runID = m.newRunID()
	m.startedAt = m.now()
	m.state = StateRunning

	m.logger.Info("run started", "run", m.runID, "grid", formatGrid(m.grid), "high_score", m.highScore)
	m.ticker.Start()
}

// Tick advances a running game by one step. Outside Running it does nothing.
// The only error it returns is a *PersistenceError from saving a new high
// score; the transition to GameOver has happened regardless.
func (m *Machine) Tick() error {
	if m.state != StateRunning {
		return nil
	}
	m.ticks++

	m.body.Advance(m.pending)
	out := m.engine.Evaluate(m.body, m.food)
	m.food = out.Food
	if out.Ate {
		m.score++
		m.logger.Debug("apple eaten", "run", m.runID, "score", m.score, "length", m.body.Len())
	}

	if out.Collision == CollisionNone {
		return nil
	}

	m.ticker.Stop()
	m.state = StateGameOver
	return m.finish(out.Collision)
}

// finish records the run and persists a new high score.
func (m *Machine) finish(c Collision) error {
	summary := RunSummary{
		RunID:      m.runID,
		Score:      m.score,
		Length:     m.body.Len(),
		Ticks:      m.ticks,
		Collision:  c,
		StartedAt:  m.startedAt,
		FinishedAt: m.now(),
	}
	m.logger.Info("run ended", "run", m.runID, "score", m.score, "collision", c, "ticks", m.ticks)

	if m.recorder != nil {
		if err := m.recorder.RecordRun(summary); err != nil {
			m.logger.Warn("cannot record run", "run", m.runID, "error", err)
		}
	}

	if m.score <= m.highScore {
		return nil
	}
	m.highScore = m.score
	m.logger.Info("new high score", "run", m.runID, "score", m.highScore)

	if m.store == nil {
		return nil
	}
	if err := m.store.Save(m.highScore); err != nil {
		perr := &PersistenceError{Op: "save", Err: err}
		m.notice = perr
		m.logger.Error("cannot save high score", "run", m.runID, "error", err)
		return perr
	}
	return nil
}
