package world

import "strings"

// Direction is a single-step movement on the board.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions lists directions in W/A/S/D order.
var Directions = []Direction{DirUp, DirLeft, DirDown, DirRight}

// ParseDirection maps w/a/s/d (any case) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w":
		return DirUp, true
	case "a":
		return DirLeft, true
	case "s":
		return DirDown, true
	case "d":
		return DirRight, true
	}
	return 0, false
}

// Key returns the input key for the direction.
func (d Direction) Key() string {
	switch d {
	case DirUp:
		return "W"
	case DirLeft:
		return "A"
	case DirDown:
		return "S"
	case DirRight:
		return "D"
	default:
		return "?"
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offsets of one step.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirLeft:
		return 0, -1
	case DirDown:
		return 1, 0
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}
