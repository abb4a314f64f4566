package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a game session.
type Options struct {
	Config   config.SnakeConfig
	Store    snake.HighScoreStore // Optional
	Recorder snake.RunRecorder    // Optional
	Runs     RunSource            // Optional, enables the scoreboard
	Logger   *log.Logger

	// Initial terminal size and seed. A WindowSizeMsg replaces the size and
	// a zero seed is taken from the clock.
	core.RuntimeConfig

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a snake session.
type Model struct {
	opts     Options
	machine  *snake.Machine
	ticker   *Ticker
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	board    *ScoreboardModel
	width    int
	height   int
	status   string // One-line message under the help bar
	quitting bool
}

// NewModel creates a new Bubble Tea model in the Menu state.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.ScreenW, opts.ScreenH = def.ScreenW, def.ScreenH
	}

	m := Model{
		opts:   opts,
		ticker: NewTicker(opts.Config.Timing.TickInterval),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  opts.ScreenW,
		height: opts.ScreenH,
	}
	if err := m.newMachine(); err != nil {
		return Model{}, err
	}
	m.screen = core.NewScreen(m.screenSize())
	return m, nil
}

// gridFor returns the configured grid, or one fitted to the terminal.
func (m *Model) gridFor() (snake.Grid, error) {
	g := m.opts.Config.Grid
	if m.fitsTerminal() {
		return FitGrid(m.width, m.height, g.Unit)
	}
	return snake.NewGrid(g.Width, g.Height, g.Unit)
}

func (m *Model) fitsTerminal() bool {
	g := m.opts.Config.Grid
	return g.Width == 0 || g.Height == 0
}

func (m *Model) newMachine() error {
	grid, err := m.gridFor()
	if err != nil {
		return fmt.Errorf("tui: terminal %dx%d too small: %w", m.width, m.height, err)
	}

	opts := []snake.Option{
		snake.WithRNG(rand.New(rand.NewSource(m.opts.Seed))),
		snake.WithTicker(m.ticker),
		snake.WithLogger(m.opts.Logger),
		snake.WithInitialLength(m.opts.Config.Snake.InitialLength),
	}
	if m.opts.Store != nil {
		opts = append(opts, snake.WithHighScoreStore(m.opts.Store))
	}
	if m.opts.Recorder != nil {
		opts = append(opts, snake.WithRunRecorder(m.opts.Recorder))
	}

	m.machine = snake.NewMachine(grid, opts...)
	return nil
}

// refitGrid resizes the session's grid to the current terminal.
func (m *Model) refitGrid() error {
	grid, err := m.gridFor()
	if err != nil {
		return fmt.Errorf("tui: terminal %dx%d too small: %w", m.width, m.height, err)
	}
	return m.machine.Resize(grid)
}

// screenSize returns the buffer size: the terminal minus the help line, but
// never smaller than the playfield.
func (m *Model) screenSize() (int, int) {
	w, h := ScreenSize(m.machine.Grid())
	return max(w, m.width), max(h, m.height-helpRows)
}

// Machine returns the session state machine.
func (m Model) Machine() *snake.Machine {
	return m.machine
}

// Init initializes the model. Ticks start with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case closeScoreboardMsg:
		m.board = nil
		return m, nil
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.machine.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ticker.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Scores) && state == snake.StateMenu:
		if m.opts.Runs != nil {
			board := NewScoreboardModel(m.opts.Runs, m.width, m.height)
			board.embedded = true
			m.board = &board
		} else {
			m.status = "run history needs the sqlite backend"
		}
		return m, nil
	}

	if cmd := m.keys.Command(msg, state); cmd != core.CommandNone {
		if m.machine.Handle(cmd) && !cmd.IsDirectional() {
			m.status = ""
		}
	}

	// Starting a run arms the ticker
	return m, m.ticker.Pending()
}

// updateBoard forwards a message to the embedded scoreboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.board.Update(msg)
	board, ok := updated.(ScoreboardModel)
	if !ok {
		m.board = nil
		return m, cmd
	}
	m.board = &board
	if board.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	// A fitted grid follows the terminal, but only between runs
	if m.fitsTerminal() && m.machine.State() == snake.StateMenu {
		if err := m.refitGrid(); err != nil {
			m.opts.Logger.Warn("keeping previous grid", "error", err)
		}
	}
	m.screen.Resize(m.screenSize())

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Accept(msg) {
		return m, nil
	}

	// A failed save is already logged and carried in the snapshot notice
	if err := m.machine.Tick(); err != nil {
		m.opts.Logger.Debug("tick reported persistence error", "error", err)
	}

	// Continue ticking until the run ends
	return m, m.ticker.Next()
}

// saveScreenshot writes the current frame and session state to a file.
func (m *Model) saveScreenshot() (string, error) {
	DrawSnapshot(m.screen, m.machine.Snapshot())

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	content := m.screen.String() + "\n\n" + m.machine.DebugState() +
		fmt.Sprintf("Tick interval: %s\n", m.ticker.Interval())
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", err
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	DrawSnapshot(m.screen, m.machine.Snapshot())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := m.help.ShortHelpView(m.keys.helpFor(m.machine.State()))
	if m.status != "" {
		footer += "  " + m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
