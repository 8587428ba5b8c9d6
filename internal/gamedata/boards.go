package gamedata

import (
	"errors"
	"fmt"
	"sort"
)

// Point is a zero-based (row, column) board coordinate.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// BoardDef defines the fixed map for one character level.
type BoardDef struct {
	Level       int      `yaml:"level"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Entry       Point    `yaml:"entry"` // Where the character arrives
	Gate        Point    `yaml:"gate"`  // Exit door, or the boss lair on the last board
	Rows        []string `yaml:"rows"`
}

// Validate checks the board is rectangular and both points are inside it.
func (b *BoardDef) Validate() error {
	if len(b.Rows) == 0 {
		return fmt.Errorf("board %d has no rows", b.Level)
	}
	width := len([]rune(b.Rows[0]))
	for i, row := range b.Rows {
		if len([]rune(row)) != width {
			return fmt.Errorf("board %d row %d has width %d, want %d", b.Level, i, len([]rune(row)), width)
		}
	}
	for name, p := range map[string]Point{"entry": b.Entry, "gate": b.Gate} {
		if p.Row < 0 || p.Row >= len(b.Rows) || p.Col < 0 || p.Col >= width {
			return fmt.Errorf("board %d %s (%d,%d) is outside the board", b.Level, name, p.Row, p.Col)
		}
	}
	return nil
}

// BoardsFile represents the structure of boards.yaml.
type BoardsFile struct {
	Boards []BoardDef `yaml:"boards"`
}

// LoadBoards loads the embedded boards sorted by level.
func LoadBoards() ([]BoardDef, error) {
	file, err := Load[BoardsFile]("boards.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Boards) == 0 {
		return nil, errors.New("no boards loaded from boards.yaml")
	}
	for i := range file.Boards {
		if err := file.Boards[i].Validate(); err != nil {
			return nil, err
		}
	}
	sort.Slice(file.Boards, func(i, j int) bool { return file.Boards[i].Level < file.Boards[j].Level })
	return file.Boards, nil
}
