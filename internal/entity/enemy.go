package entity

import (
	"fmt"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/gamedata"
)

// BasicAttackName is the name of every enemy's plain attack move.
const BasicAttackName = "Basic Attack"

// Move is one of an enemy's attacks.
type Move struct {
	Name   string
	Damage int
}

// Enemy is a hostile creature created for a single encounter.
type Enemy struct {
	Def         *gamedata.EnemyDef // Template the enemy was rolled from
	Name        string
	Icon        string
	Description string
	Level       string // Level tag from the template
	HP          int    // Current hit points; may drop below zero on the killing blow
	MaxHP       int    // Hit points at creation
	Moves       []Move // Named skill move followed by the basic attack
}

// NewEnemyFromDef rolls a new enemy from a template and its stat tier.
// Every stat is drawn once here and never re-rolled.
func NewEnemyFromDef(def *gamedata.EnemyDef, tier gamedata.StatTier, src dice.Source) *Enemy {
	hp := tier.HP.Roll(src)
	return &Enemy{
		Def:         def,
		Name:        def.Name,
		Icon:        def.Icon,
		Description: def.Description,
		Level:       def.Level,
		HP:          hp,
		MaxHP:       hp,
		Moves: []Move{
			{Name: def.Move, Damage: tier.Skill.Roll(src)},
			{Name: BasicAttackName, Damage: tier.Attack.Roll(src)},
		},
	}
}

// NewEnemy selects a template for the character level (or the boss) and rolls it.
func NewEnemy(registry *gamedata.EnemyRegistry, level int, bossFight bool, src dice.Source) (*Enemy, error) {
	candidates := registry.Candidates(level, bossFight)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no enemies for level %d", level)
	}
	def := dice.Pick(src, candidates)
	tier, ok := registry.Tier(def.Tier)
	if !ok {
		return nil, fmt.Errorf("enemy %s: unknown tier %q", def.Name, def.Tier)
	}
	return NewEnemyFromDef(def, tier, src), nil
}

// Copy returns an independent working copy of the enemy.
func (e *Enemy) Copy() *Enemy {
	cp := *e
	cp.Moves = append([]Move(nil), e.Moves...)
	return &cp
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage subtracts amount from HP and returns it. Negative amounts are ignored.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	e.HP -= amount
	return amount
}

// DisplayHP returns HP clamped at zero for presentation.
func (e *Enemy) DisplayHP() int {
	if e.HP < 0 {
		return 0
	}
	return e.HP
}
