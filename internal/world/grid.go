package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/telemetry"
)

// Grid is the active board. The avatar marker is written into the cells;
// the avatar remembers what it covers.
type Grid struct {
	Level       int
	Title       string
	Description string
	Entry       gamedata.Point
	Gate        gamedata.Point
	Height      int
	Width       int
	cells       [][]Tile
}

// NewGrid creates a fresh grid from a board definition.
//
// Precondition: def passed Validate.
func NewGrid(def gamedata.BoardDef) *Grid {
	cells := make([][]Tile, len(def.Rows))
	for r, row := range def.Rows {
		runes := []rune(row)
		cells[r] = make([]Tile, len(runes))
		for c, ch := range runes {
			cells[r][c] = Tile(ch)
		}
	}
	width := 0
	if len(cells) > 0 {
		width = len(cells[0])
	}
	return &Grid{
		Level:       def.Level,
		Title:       def.Title,
		Description: def.Description,
		Entry:       def.Entry,
		Gate:        def.Gate,
		Height:      len(cells),
		Width:       width,
		cells:       cells,
	}
}

// InBounds reports whether (row, col) is on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// GetTile returns the cell content at (row, col). Off-board cells read as walls.
func (g *Grid) GetTile(row, col int) Tile {
	if !g.InBounds(row, col) {
		return TileWall
	}
	return g.cells[row][col]
}

// Place puts a new avatar on the board at (row, col).
func (g *Grid) Place(row, col int) *entity.Avatar {
	a := entity.NewAvatar(row, col, rune(g.GetTile(row, col)))
	g.cells[row][col] = Tile(a.Symbol)
	return a
}

// PlaceAtEntry puts a new avatar at the board's entry point.
func (g *Grid) PlaceAtEntry() *entity.Avatar {
	return g.Place(g.Entry.Row, g.Entry.Col)
}

// Move steps the avatar one cell in dir. A wall or off-board destination
// leaves everything unchanged and returns false. On success the vacated cell
// gets its prior content back and the new cell's content is recorded.
func (g *Grid) Move(ctx context.Context, a *entity.Avatar, dir Direction) bool {
	_, span := telemetry.Tracer("world").Start(ctx, "world.move")
	defer span.End()

	dRow, dCol := dir.Delta()
	row, col := a.Row+dRow, a.Col+dCol
	span.SetAttributes(
		attribute.String("direction", dir.String()),
		attribute.Int("row", row),
		attribute.Int("col", col),
	)
	if !g.GetTile(row, col).IsPassable() {
		span.SetAttributes(attribute.Bool("blocked", true))
		return false
	}

	g.cells[a.Row][a.Col] = Tile(a.Under)
	a.Row, a.Col = row, col
	a.Under = rune(g.cells[row][col])
	g.cells[row][col] = Tile(a.Symbol)
	return true
}

// Lines returns the board as display strings, avatar included.
func (g *Grid) Lines() []string {
	lines := make([]string, g.Height)
	for r, row := range g.cells {
		runes := make([]rune, len(row))
		for c, t := range row {
			runes[c] = t.Rune()
		}
		lines[r] = string(runes)
	}
	return lines
}
