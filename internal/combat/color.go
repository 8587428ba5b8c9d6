package combat

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/baekgu/internal/entity"
)

// tcellColor returns the enemy's display color, white for enemies without a template.
func tcellColor(e *entity.Enemy) tcell.Color {
	if e.Def == nil {
		return tcell.ColorWhite
	}
	return e.Def.TCellColor()
}
