package encounter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/progression"
	"github.com/samdwyer/baekgu/internal/ui"
)

type fakeGame struct {
	name       string
	won        bool
	err        error
	difficulty int
	plays      int
}

func (f *fakeGame) Name() string  { return f.name }
func (f *fakeGame) Rules() string { return "rules" }
func (f *fakeGame) Play(_ context.Context, difficulty int, _ *entity.Character) (bool, error) {
	f.plays++
	f.difficulty = difficulty
	return f.won, f.err
}

type fakeBattler struct {
	won   bool
	calls int
}

func (f *fakeBattler) Battle(_ context.Context, _ *entity.Character, boss bool) (bool, error) {
	f.calls++
	if boss {
		return false, errors.New("unexpected boss fight")
	}
	return f.won, nil
}

type countingRewarder struct{ grants int }

func (r *countingRewarder) Grant(_ context.Context, _ *entity.Character) progression.Loot {
	r.grants++
	return progression.Loot{Exp: 250, Lines: []string{"🏆 Reward Earned 🏆"}}
}

type fixture struct {
	d        *Dispatcher
	out      *bytes.Buffer
	battler  *fakeBattler
	guessing *fakeGame
	memory   *fakeGame
	rewarder *countingRewarder
}

func newFixture(src dice.Source, won bool) *fixture {
	out := &bytes.Buffer{}
	f := &fixture{
		out:      out,
		battler:  &fakeBattler{won: won},
		guessing: &fakeGame{name: "Hangman", won: won},
		memory:   &fakeGame{name: "Memory Game", won: won},
		rewarder: &countingRewarder{},
	}
	console := ui.NewLineConsole(strings.NewReader("\n\n\n"), out)
	f.d = NewDispatcher(console, src, DefaultRate, f.battler, f.guessing, f.memory, f.rewarder, zap.NewNop())
	return f
}

func newCharacter() *entity.Character {
	c := entity.NewCharacter("Baekgu", nil, &dice.Scripted{})
	c.Level = 2
	return c
}

func TestNoEncounter(t *testing.T) {
	f := newFixture(&dice.Scripted{Floats: []float64{0.25}}, true)
	res, err := f.d.Dispatch(context.Background(), newCharacter())
	require.NoError(t, err)
	assert.Equal(t, KindNone, res.Kind)
	assert.Equal(t, 0, f.battler.calls+f.guessing.plays+f.memory.plays)
	assert.Empty(t, f.out.String())
}

func TestDispatchKinds(t *testing.T) {
	tests := []struct {
		pick int
		kind Kind
	}{
		{0, KindBattle},
		{1, KindGuessing},
		{2, KindMemory},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := newFixture(&dice.Scripted{Floats: []float64{0.1}, Ints: []int{tt.pick}}, true)
			res, err := f.d.Dispatch(context.Background(), newCharacter())
			require.NoError(t, err)
			assert.Equal(t, tt.kind, res.Kind)
			assert.True(t, res.Won)
			assert.Equal(t, 1, f.rewarder.grants)
			assert.Equal(t, 250, res.Loot.Exp)
			assert.Contains(t, f.out.String(), "Reward Earned")
		})
	}
}

func TestMiniGameGetsLevelAsDifficulty(t *testing.T) {
	f := newFixture(&dice.Scripted{Floats: []float64{0}, Ints: []int{1}}, true)
	_, err := f.d.Dispatch(context.Background(), newCharacter())
	require.NoError(t, err)
	assert.Equal(t, 2, f.guessing.difficulty)
	assert.Contains(t, f.out.String(), "You are about to play Hangman!")
}

func TestLossGrantsNothing(t *testing.T) {
	f := newFixture(&dice.Scripted{Floats: []float64{0}, Ints: []int{2}}, false)
	res, err := f.d.Dispatch(context.Background(), newCharacter())
	require.NoError(t, err)
	assert.False(t, res.Won)
	assert.Equal(t, 0, f.rewarder.grants)
}

func TestMiniGameErrorPropagates(t *testing.T) {
	f := newFixture(&dice.Scripted{Floats: []float64{0}, Ints: []int{2}}, true)
	f.memory.err = ui.ErrQuit
	_, err := f.d.Dispatch(context.Background(), newCharacter())
	assert.ErrorIs(t, err, ui.ErrQuit)
	assert.Equal(t, 0, f.rewarder.grants)
}

func TestEncounterRateConverges(t *testing.T) {
	const trials = 10000
	f := newFixture(dice.NewSource(11), false)
	counts := map[Kind]int{}
	for i := 0; i < trials; i++ {
		// Losing battles keep the console input untouched.
		f.d.console = ui.NewLineConsole(strings.NewReader("\n"), &bytes.Buffer{})
		res, err := f.d.Dispatch(context.Background(), newCharacter())
		require.NoError(t, err)
		counts[res.Kind]++
	}
	assert.InDelta(t, 0.75, float64(counts[KindNone])/trials, 0.02)
	for _, k := range Kinds {
		assert.InDelta(t, 0.25/3, float64(counts[k])/trials, 0.015, k.String())
	}
}
