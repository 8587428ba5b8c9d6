package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/world"
)

// LogLine is one styled line in the message log.
type LogLine struct {
	Text  string
	Style tcell.Style
}

// Renderer handles drawing the board, the message log and the input line.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render redraws the whole screen: board on top, then the most recent log
// lines, then the prompt with the input typed so far.
func (r *Renderer) Render(grid *world.Grid, log []LogLine, prompt, input string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	top := 0
	if grid != nil {
		r.screen.DrawText(0, 0, grid.Title, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
		for row, line := range grid.Lines() {
			for col, ch := range []rune(line) {
				r.screen.SetContent(col*2, row+1, ch, r.getTileStyle(world.Tile(ch)))
			}
		}
		top = grid.Height + 2
	}

	sep := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, top, '─', sep)
	}

	promptY := height - 1
	for i, line := range visibleLines(log, promptY-top-1) {
		r.screen.DrawText(0, top+1+i, line.Text, line.Style)
	}

	x := r.screen.DrawText(0, promptY, prompt, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	x = r.screen.DrawText(x, promptY, input, tcell.StyleDefault)
	r.screen.ShowCursor(x, promptY)

	r.screen.Show()
}

// getTileStyle returns the appropriate style for a board cell.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case world.TileLair:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case world.Tile(entity.DefaultAvatarSymbol):
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// visibleLines returns the last n lines of log.
func visibleLines(log []LogLine, n int) []LogLine {
	if n <= 0 {
		return nil
	}
	if len(log) <= n {
		return log
	}
	return log[len(log)-n:]
}
