package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/baekgu/internal/world"
)

// LineConsole is a Console over plain reader and writer streams.
type LineConsole struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLineConsole creates a line console reading from r and writing to w.
func NewLineConsole(r io.Reader, w io.Writer) *LineConsole {
	return &LineConsole{in: bufio.NewScanner(r), out: w}
}

// Print writes line followed by a newline.
func (c *LineConsole) Print(line string) {
	fmt.Fprintln(c.out, line)
}

// Printf formats and writes one line.
func (c *LineConsole) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// Highlight writes lines without color.
func (c *LineConsole) Highlight(_ tcell.Color, lines ...string) {
	for _, l := range lines {
		c.Print(l)
	}
}

// Prompt writes prompt and reads one line with surrounding space trimmed.
func (c *LineConsole) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrQuit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// RenderGrid prints the board with spaced cells.
func (c *LineConsole) RenderGrid(g *world.Grid) {
	for _, line := range g.Lines() {
		c.Print(spaceCells(line))
	}
}

// clearSequence is the ANSI "home cursor, erase display" sequence.
const clearSequence = "\033[H\033[2J"

// Clear erases the terminal.
func (c *LineConsole) Clear() {
	fmt.Fprint(c.out, clearSequence)
}

func spaceCells(line string) string {
	runes := []rune(line)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

var _ Console = (*LineConsole)(nil)
