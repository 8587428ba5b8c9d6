package world

import (
	"fmt"

	"github.com/samdwyer/baekgu/internal/gamedata"
)

// Atlas holds every board definition and hands out fresh grids.
type Atlas struct {
	boards []gamedata.BoardDef
	gates  []Gate
}

// NewAtlas creates an atlas from board definitions sorted by level.
func NewAtlas(boards []gamedata.BoardDef) *Atlas {
	return &Atlas{boards: boards, gates: GatesFor(boards)}
}

// LoadAtlas loads the embedded boards.
func LoadAtlas() (*Atlas, error) {
	boards, err := gamedata.LoadBoards()
	if err != nil {
		return nil, fmt.Errorf("loading boards: %w", err)
	}
	return NewAtlas(boards), nil
}

// Board returns a fresh grid for level.
func (a *Atlas) Board(level int) (*Grid, error) {
	for _, b := range a.boards {
		if b.Level == level {
			return NewGrid(b), nil
		}
	}
	return nil, fmt.Errorf("no board for level %d", level)
}

// Gates returns the level gates in evaluation order.
func (a *Atlas) Gates() []Gate {
	return a.gates
}

// Levels returns the number of boards.
func (a *Atlas) Levels() int {
	return len(a.boards)
}
