package world

import (
	"fmt"

	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/gamedata"
)

// GateKind distinguishes level exits from the boss lair.
type GateKind int

const (
	GateExit GateKind = iota
	GateBoss
)

// String returns a human-readable gate kind.
func (k GateKind) String() string {
	switch k {
	case GateExit:
		return "exit"
	case GateBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Gate is a level-transition predicate tied to one board cell.
type Gate struct {
	Kind    GateKind
	Level   int // Character level the gate applies to
	At      gamedata.Point
	MinKeys int
}

// Open reports whether a character standing at (row, col) passes the gate:
// exact position, exact level, enough keys and experience at the level threshold.
func (g Gate) Open(row, col int, c *entity.Character) bool {
	return row == g.At.Row && col == g.At.Col &&
		c.Level == g.Level &&
		c.ItemCount(entity.ItemKey) >= g.MinKeys &&
		c.Exp >= c.ExpThreshold()
}

// Announce returns the line shown when the gate opens.
func (g Gate) Announce() string {
	if g.Kind == GateBoss {
		return "You are going to fight the boss to save Haru. Good luck!"
	}
	return fmt.Sprintf("⬆️⬆️⬆️ Level UP ⬆️⬆️⬆️\n%s Level clear! You are moving to Level %d.", ordinal(g.Level), g.Level+1)
}

// GatesFor derives the gates from boards sorted by level: every board's gate
// is an exit needing a key except the last, which is the boss lair.
func GatesFor(boards []gamedata.BoardDef) []Gate {
	gates := make([]Gate, 0, len(boards))
	for i, b := range boards {
		g := Gate{Kind: GateExit, Level: b.Level, At: b.Gate, MinKeys: 1}
		if i == len(boards)-1 {
			g.Kind = GateBoss
			g.MinKeys = 0
		}
		gates = append(gates, g)
	}
	return gates
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
