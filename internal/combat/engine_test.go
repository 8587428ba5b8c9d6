package combat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/pacing"
	"github.com/samdwyer/baekgu/internal/ui"
)

// stubInventory records calls and returns a fixed answer.
type stubInventory struct {
	closed bool
	calls  int
}

func (s *stubInventory) UseItems(_ context.Context, _ *entity.Character) (bool, error) {
	s.calls++
	return s.closed, nil
}

type harness struct {
	engine *Engine
	out    *bytes.Buffer
	clock  *pacing.Counter
	inv    *stubInventory
}

func newHarness(input string, src dice.Source) *harness {
	out := &bytes.Buffer{}
	clock := &pacing.Counter{}
	inv := &stubInventory{closed: true}
	console := ui.NewLineConsole(strings.NewReader(input), out)
	engine := NewEngine(console, gamedata.MustLoadEnemyRegistry(), src, clock, inv, zap.NewNop(),
		Options{SkillUses: DefaultSkillUses, EnemyDelayTicks: 1})
	return &harness{engine: engine, out: out, clock: clock, inv: inv}
}

func newCharacter(attack int) *entity.Character {
	c := entity.NewCharacter("Baekgu", []entity.Skill{{Name: "Bark", Damage: 25, Level: 1}}, &dice.Scripted{})
	c.BaseAttack = attack
	return c
}

func newEnemy(hp, skillDamage, attackDamage int) *entity.Enemy {
	return &entity.Enemy{
		Name:  "Mouse",
		Icon:  "🐭",
		Level: "1",
		HP:    hp,
		MaxHP: hp,
		Moves: []entity.Move{
			{Name: "Nibble", Damage: skillDamage},
			{Name: entity.BasicAttackName, Damage: attackDamage},
		},
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseEncounterStart, "encounter_start"},
		{PhasePlayerTurn, "player_turn"},
		{PhaseEnemyTurn, "enemy_turn"},
		{PhaseVictory, "victory"},
		{PhaseDefeat, "defeat"},
		{PhaseFled, "fled"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestSkillBudget(t *testing.T) {
	b := NewSkillBudget(2)
	assert.True(t, b.Spend())
	assert.True(t, b.Spend())
	assert.False(t, b.Spend())
	assert.Equal(t, SkillBudget{Limit: 2, Remaining: 0, Used: 2}, b)
	assert.False(t, b.Available())

	assert.Equal(t, 0, NewSkillBudget(-3).Remaining)
}

func TestBasicAttackVictoryWithoutCounter(t *testing.T) {
	h := newHarness("1\n1\n", &dice.Scripted{})
	c := newCharacter(50)
	ref := newEnemy(90, 10, 5)

	out, err := h.engine.FightEnemy(context.Background(), c, ref, false)
	require.NoError(t, err)

	assert.Equal(t, PhaseVictory, out.Phase)
	assert.True(t, out.Won)
	assert.Equal(t, 2, out.Turns)
	assert.Equal(t, 90, ref.HP, "reference enemy is never mutated")
	// One counter-attack after the first hit, none after the killing blow.
	assert.Equal(t, 1, h.clock.Calls)
	assert.Equal(t, 240, c.HP)
	assert.Contains(t, h.out.String(), VictoryLine)
	assert.Contains(t, h.out.String(), "Mouse HP: 0/90")
}

func TestBossVictoryHasNoCelebration(t *testing.T) {
	h := newHarness("1\n", &dice.Scripted{})
	out, err := h.engine.FightEnemy(context.Background(), newCharacter(100), newEnemy(50, 1, 1), true)
	require.NoError(t, err)
	assert.True(t, out.Won)
	assert.NotContains(t, h.out.String(), VictoryLine)
}

func TestSkillUseConsumesBudget(t *testing.T) {
	// Unknown skill is retried without spending, then Bark lands twice.
	h := newHarness("2\nhowl\nbark\n2\nBARK\n", &dice.Scripted{})
	c := newCharacter(1)

	out, err := h.engine.FightEnemy(context.Background(), c, newEnemy(50, 0, 0), false)
	require.NoError(t, err)

	assert.Equal(t, PhaseVictory, out.Phase)
	assert.Equal(t, SkillBudget{Limit: 5, Remaining: 3, Used: 2}, out.Budget)
	assert.Contains(t, h.out.String(), "Invalid skill")
}

func TestSkillBackOutReturnsToMenu(t *testing.T) {
	h := newHarness("2\nq\n1\n", &dice.Scripted{})
	out, err := h.engine.FightEnemy(context.Background(), newCharacter(100), newEnemy(10, 0, 0), false)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Budget.Used)
	assert.Equal(t, 0, h.clock.Calls, "backing out gives the enemy no turn")
}

func TestSkillRejectedAtZeroBudget(t *testing.T) {
	h := newHarness("2\n1\n", &dice.Scripted{})
	h.engine.opts.SkillUses = 0
	out, err := h.engine.FightEnemy(context.Background(), newCharacter(100), newEnemy(10, 0, 0), false)
	require.NoError(t, err)
	assert.True(t, out.Won)
	assert.Equal(t, 1, out.Turns)
	assert.Contains(t, h.out.String(), "ran out of uses")
}

func TestFleeCostsHeartWithoutCounter(t *testing.T) {
	h := newHarness("3\n", &dice.Scripted{})
	c := newCharacter(1)
	c.HP = 100

	out, err := h.engine.FightEnemy(context.Background(), c, newEnemy(90, 50, 50), false)
	require.NoError(t, err)

	assert.Equal(t, PhaseFled, out.Phase)
	assert.False(t, out.Won)
	assert.Equal(t, 9, c.Heart)
	assert.Equal(t, c.MaxHP, c.HP)
	assert.Equal(t, 0, h.clock.Calls)
	assert.Contains(t, h.out.String(), "Mouse seems to be too strong for me")
}

func TestDefeatOnLastHeart(t *testing.T) {
	h := newHarness("1\n", &dice.Scripted{})
	c := newCharacter(1)
	c.Heart = 1
	c.HP = 1

	out, err := h.engine.FightEnemy(context.Background(), c, newEnemy(90, 5, 5), false)
	require.NoError(t, err)

	assert.Equal(t, PhaseDefeat, out.Phase)
	assert.False(t, out.Won)
	assert.Equal(t, 0, c.Heart)
	assert.False(t, c.IsAlive())
	assert.Contains(t, h.out.String(), DefeatLine)
}

func TestSideChannelsDoNotConsumeTurn(t *testing.T) {
	h := newHarness("4\n9\n5\n1\n", &dice.Scripted{})
	out, err := h.engine.FightEnemy(context.Background(), newCharacter(100), newEnemy(10, 0, 0), false)
	require.NoError(t, err)

	assert.True(t, out.Won)
	assert.Equal(t, 1, out.Turns)
	assert.Equal(t, 1, h.inv.calls)
	assert.Equal(t, 0, h.clock.Calls)
	assert.Contains(t, h.out.String(), "Your Stats")
	assert.Contains(t, h.out.String(), "Invalid input")
}

func TestInventoryNotClosedGivesEnemyTurn(t *testing.T) {
	h := newHarness("5\n1\n", &dice.Scripted{})
	h.inv.closed = false
	c := newCharacter(100)

	_, err := h.engine.FightEnemy(context.Background(), c, newEnemy(10, 7, 7), false)
	require.NoError(t, err)
	assert.Equal(t, 243, c.HP)
}

func TestInputClosedEndsBattleWithError(t *testing.T) {
	h := newHarness("", &dice.Scripted{})
	_, err := h.engine.FightEnemy(context.Background(), newCharacter(1), newEnemy(10, 0, 0), false)
	assert.True(t, errors.Is(err, ui.ErrQuit))
}

func TestBattleSelectsEnemyForLevel(t *testing.T) {
	h := newHarness(strings.Repeat("1\n", 200), dice.NewSource(3))
	c := newCharacter(500)
	won, err := h.engine.Battle(context.Background(), c, false)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Contains(t, h.out.String(), "ENEMY ENCOUNTERED")
}

// Enemy HP never increases during a battle and each basic attack removes
// exactly the character's base attack.
func TestBasicAttackProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		attack := rapid.IntRange(1, 60).Draw(t, "attack")
		hp := rapid.IntRange(1, 600).Draw(t, "hp")
		hits := (hp + attack - 1) / attack

		h := newHarness(strings.Repeat("1\n", hits), &dice.Scripted{})
		c := newCharacter(attack)
		c.MaxHP, c.HP = 1_000_000, 1_000_000

		out, err := h.engine.FightEnemy(context.Background(), c, newEnemy(hp, 0, 0), false)
		if err != nil {
			t.Fatalf("FightEnemy() error = %v", err)
		}
		if out.Phase != PhaseVictory || out.Turns != hits {
			t.Fatalf("phase %s after %d turns, want victory after %d", out.Phase, out.Turns, hits)
		}
	})
}
