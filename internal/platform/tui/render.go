package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Playfield layout on the terminal.
const (
	cellWidth  = 2 // Terminal columns per grid cell, keeps cells roughly square
	hudRows    = 1 // Score line above the playfield
	helpRows   = 1 // Help line below the screen buffer
	borderSize = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBodyGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2DB400")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// FitGrid returns the largest grid whose playfield fits a terminal of the
// given size.
func FitGrid(termW, termH, unit int) (snake.Grid, error) {
	cols := (termW - 2*borderSize) / cellWidth
	rows := termH - helpRows - hudRows - 2*borderSize
	return snake.NewGrid(cols*unit, rows*unit, unit)
}

// ScreenSize returns the screen buffer size needed to draw grid g.
func ScreenSize(g snake.Grid) (w, h int) {
	return g.Cols()*cellWidth + 2*borderSize, g.Rows() + hudRows + 2*borderSize
}

// DrawSnapshot renders the session into the screen buffer.
func DrawSnapshot(s *core.Screen, snap snake.Snapshot) {
	s.Clear()

	switch snap.State {
	case snake.StateRunning:
		drawRunning(s, snap)
	case snake.StateGameOver:
		drawGameOver(s, snap)
	default:
		drawMenu(s, snap)
	}
}

func drawMenu(s *core.Screen, snap snake.Snapshot) {
	_, mid := s.Bounds().Center()

	s.DrawTextCentered(mid-3, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorYellow)
	s.DrawTextCentered(mid-1, "Snake Game", core.ColorBrightGreen)
	s.DrawTextCentered(mid+1, "Press ENTER to start", core.ColorWhite)
	s.DrawTextCentered(mid+3, "TAB for scores, Q to quit", core.ColorGray)
}

func drawRunning(s *core.Screen, snap snake.Snapshot) {
	drawHUD(s, snap)

	g := snap.Grid
	field := core.NewRect(0, hudRows, g.Cols()*cellWidth+2*borderSize, g.Rows()+2*borderSize)
	s.DrawBox(field, core.ColorGray)

	drawCell(s, g, snap.Food, '●', ' ', core.ColorRed)

	// Tail first so the head is drawn on top when cells overlap
	for i := len(snap.Cells) - 1; i >= 1; i-- {
		drawCell(s, g, snap.Cells[i], '█', '█', core.ColorBodyGreen)
	}
	if len(snap.Cells) > 0 {
		drawCell(s, g, snap.Cells[0], '█', '█', core.ColorGreen)
	}
}

func drawHUD(s *core.Screen, snap snake.Snapshot) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	high := fmt.Sprintf("High Score: %d", snap.HighScore)

	s.DrawText(1, 0, score, core.ColorRed)
	s.DrawText(s.Width()-len(high)-1, 0, high, core.ColorYellow)
}

// drawCell draws a grid cell as two terminal columns inside the playfield border.
func drawCell(s *core.Screen, g snake.Grid, c snake.Cell, left, right rune, color core.Color) {
	if !g.InBounds(c) {
		return
	}
	col, row := g.Index(c)
	x := borderSize + col*cellWidth
	y := hudRows + borderSize + row
	s.SetColored(x, y, left, color)
	s.SetColored(x+1, y, right, color)
}

func drawGameOver(s *core.Screen, snap snake.Snapshot) {
	_, mid := s.Bounds().Center()

	s.DrawTextCentered(mid-4, fmt.Sprintf("Score: %d", snap.Score), core.ColorRed)
	s.DrawTextCentered(mid-3, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorYellow)
	s.DrawTextCentered(mid-1, "Game Over", core.ColorRed)
	s.DrawTextCentered(mid+1, "Press ENTER to return to menu", core.ColorWhite)

	if snap.Notice != "" {
		s.DrawTextCentered(mid+3, "Unable to save high score!", core.ColorRed)
		s.DrawTextCentered(mid+4, snap.Notice, core.ColorGray)
	}
}
