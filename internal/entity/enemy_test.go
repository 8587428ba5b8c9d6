package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/gamedata"
)

func TestNewEnemyFromDef(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "mouse", Name: "Mouse", Move: "Nibble", Tier: "level1"}
	tier := gamedata.StatTier{
		HP:     dice.Range{Min: 80, Max: 100},
		Attack: dice.Range{Min: 5, Max: 10},
		Skill:  dice.Range{Min: 10, Max: 25},
	}
	// HP, skill, attack
	e := NewEnemyFromDef(def, tier, &dice.Scripted{Ints: []int{10, 5, 2}})

	assert.Equal(t, 90, e.HP)
	assert.Equal(t, 90, e.MaxHP)
	require.Len(t, e.Moves, 2)
	assert.Equal(t, Move{Name: "Nibble", Damage: 15}, e.Moves[0])
	assert.Equal(t, Move{Name: BasicAttackName, Damage: 7}, e.Moves[1])
}

func TestNewEnemyUsesRegistry(t *testing.T) {
	registry := gamedata.MustLoadEnemyRegistry()
	src := dice.NewSource(42)

	for level := 1; level <= 3; level++ {
		e, err := NewEnemy(registry, level, false, src)
		require.NoError(t, err)
		tier, ok := registry.Tier(e.Def.Tier)
		require.True(t, ok)
		assert.GreaterOrEqual(t, e.HP, tier.HP.Min)
		assert.LessOrEqual(t, e.HP, tier.HP.Max)
	}

	boss, err := NewEnemy(registry, 3, true, src)
	require.NoError(t, err)
	assert.Equal(t, "Majestic Fluffy BunBun", boss.Name)
}

func TestEnemyCopyIsIndependent(t *testing.T) {
	e := &Enemy{Name: "Ghost", HP: 300, MaxHP: 300, Moves: []Move{{Name: "Chill Touch", Damage: 80}}}
	cp := e.Copy()
	cp.TakeDamage(500)
	cp.Moves[0].Damage = 1

	assert.Equal(t, 300, e.HP)
	assert.Equal(t, 80, e.Moves[0].Damage)
	assert.Equal(t, -200, cp.HP)
	assert.Equal(t, 0, cp.DisplayHP())
	assert.False(t, cp.IsAlive())
}

func TestAvatar(t *testing.T) {
	a := NewAvatar(1, 2, '.')
	r, c := a.Position()
	if r != 1 || c != 2 {
		t.Errorf("Position() = (%d,%d), want (1,2)", r, c)
	}
	if !a.At(1, 2) || a.At(2, 1) {
		t.Error("At() mismatch")
	}
	if a.Symbol != DefaultAvatarSymbol {
		t.Errorf("Symbol = %q, want %q", a.Symbol, DefaultAvatarSymbol)
	}
}
