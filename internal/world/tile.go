// Package world provides the level boards, movement and level gates.
package world

// Tile represents a single board cell.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileDoor marks a level exit.
	TileDoor Tile = 'D'
	// TileLair marks the boss lair.
	TileLair Tile = 'B'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
