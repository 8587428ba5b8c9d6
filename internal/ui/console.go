// Package ui provides the game's consoles: a line-oriented console and a
// full-screen tcell console, plus the presentation helpers both share.
package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/baekgu/internal/world"
)

// ErrQuit is returned by Prompt when input ends or the player quits the terminal.
var ErrQuit = errors.New("ui: input closed")

// Console is the player-facing text channel.
type Console interface {
	// Print writes one message; embedded newlines split it into several lines.
	Print(line string)
	// Printf formats and writes one message.
	Printf(format string, args ...any)
	// Highlight writes lines in color. Consoles without color print them plainly.
	Highlight(color tcell.Color, lines ...string)
	// Prompt shows prompt and blocks for one line of input.
	Prompt(prompt string) (string, error)
	// RenderGrid shows the active board.
	RenderGrid(g *world.Grid)
	// Clear hides everything printed so far.
	Clear()
}
