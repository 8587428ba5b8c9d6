package entity

// Avatar is the character's marker on the active board: a single (row, column)
// position plus the board content it is standing on, so the cell can be
// restored when the character moves away.
type Avatar struct {
	Row, Col int
	Under    rune // Board content hidden beneath the marker
	Symbol   rune // Display symbol
}

// DefaultAvatarSymbol marks the character on the board.
const DefaultAvatarSymbol = '@'

// NewAvatar creates an avatar at the given position standing on under.
func NewAvatar(row, col int, under rune) *Avatar {
	return &Avatar{
		Row:    row,
		Col:    col,
		Under:  under,
		Symbol: DefaultAvatarSymbol,
	}
}

// Position returns the current row, column coordinates.
func (a *Avatar) Position() (int, int) {
	return a.Row, a.Col
}

// At reports whether the avatar stands on the given cell.
func (a *Avatar) At(row, col int) bool {
	return a.Row == row && a.Col == col
}
