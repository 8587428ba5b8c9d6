package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/baekgu/internal/dice"
)

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name  string
		r     dice.Range
		valid bool
	}{
		{"ascending", dice.Range{Min: 10, Max: 30}, true},
		{"single value", dice.Range{Min: 5, Max: 5}, true},
		{"descending", dice.Range{Min: 30, Max: 10}, false},
		{"negative", dice.Range{Min: -1, Max: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRangeRoll_StaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(0, 500).Draw(rt, "min")
		hi := rapid.IntRange(lo, lo+500).Draw(rt, "max")
		seed := rapid.Int64().Draw(rt, "seed")

		r := dice.Range{Min: lo, Max: hi}
		v := r.Roll(dice.NewSource(seed))
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestNewSource_SeedIsReproducible(t *testing.T) {
	a := dice.NewSource(42)
	b := dice.NewSource(42)
	r := dice.Range{Min: 1, Max: 1000}
	for i := 0; i < 20; i++ {
		require.Equal(t, r.Roll(a), r.Roll(b), "roll %d", i)
	}
}

func TestChance(t *testing.T) {
	src := &dice.Scripted{Floats: []float64{0.05, 0.1, 0.5}}
	assert.True(t, dice.Chance(src, 0.1))
	assert.False(t, dice.Chance(src, 0.1), "rate is an exclusive upper bound")
	assert.False(t, dice.Chance(src, 0.3))
}

func TestPick(t *testing.T) {
	src := &dice.Scripted{Ints: []int{2, 0, 4}}
	items := []string{"battle", "hangman", "memory"}
	assert.Equal(t, "memory", dice.Pick(src, items))
	assert.Equal(t, "battle", dice.Pick(src, items))
	assert.Equal(t, "hangman", dice.Pick(src, items))
}

func TestScripted_Exhausted(t *testing.T) {
	src := &dice.Scripted{FloatFallback: 0.99}
	assert.Equal(t, 0, src.Intn(6))
	assert.Equal(t, 0.99, src.Float64())
}
