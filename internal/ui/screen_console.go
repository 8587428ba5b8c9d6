package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/baekgu/internal/world"
)

// maxLogLines caps the retained message history.
const maxLogLines = 500

// ScreenConsole is a full-screen Console: the board stays on top while
// messages scroll beneath it and input is typed on the last line.
type ScreenConsole struct {
	screen   *Screen
	renderer *Renderer
	grid     *world.Grid
	log      []LogLine
}

// NewScreenConsole creates a console drawing on screen.
func NewScreenConsole(screen *Screen) *ScreenConsole {
	return &ScreenConsole{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Print appends a message to the log and redraws.
func (c *ScreenConsole) Print(line string) {
	c.append(tcell.StyleDefault, line)
	c.redraw("", "")
}

// Printf formats and appends a message.
func (c *ScreenConsole) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// Highlight appends lines in color.
func (c *ScreenConsole) Highlight(color tcell.Color, lines ...string) {
	style := tcell.StyleDefault.Foreground(color).Bold(true)
	for _, l := range lines {
		c.append(style, l)
	}
	c.redraw("", "")
}

// Prompt collects a line of input. Esc or Ctrl-C returns ErrQuit.
func (c *ScreenConsole) Prompt(prompt string) (string, error) {
	var input []rune
	c.redraw(prompt, "")
	for {
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrQuit
			case tcell.KeyEnter:
				text := string(input)
				c.append(tcell.StyleDefault.Foreground(tcell.ColorYellow), prompt+text)
				return strings.TrimSpace(text), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		case nil:
			return "", ErrQuit
		}
		c.redraw(prompt, string(input))
	}
}

// RenderGrid pins g at the top of the screen.
func (c *ScreenConsole) RenderGrid(g *world.Grid) {
	c.grid = g
	c.redraw("", "")
}

// Clear empties the message log.
func (c *ScreenConsole) Clear() {
	c.log = nil
	c.redraw("", "")
}

// Close restores the terminal.
func (c *ScreenConsole) Close() {
	c.screen.Close()
}

func (c *ScreenConsole) append(style tcell.Style, text string) {
	for _, l := range strings.Split(text, "\n") {
		c.log = append(c.log, LogLine{Text: l, Style: style})
	}
	if over := len(c.log) - maxLogLines; over > 0 {
		c.log = c.log[over:]
	}
}

func (c *ScreenConsole) redraw(prompt, input string) {
	c.renderer.Render(c.grid, c.log, prompt, input)
}

var _ Console = (*ScreenConsole)(nil)
