package minigame

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/pacing"
	"github.com/samdwyer/baekgu/internal/ui"
)

func newGuessing(input string) (*Guessing, *bytes.Buffer) {
	out := &bytes.Buffer{}
	console := ui.NewLineConsole(strings.NewReader(input), out)
	words := gamedata.NewWordList(map[int][]string{1: {"bone"}, 3: {"attic"}})
	return NewGuessing(console, words, &dice.Scripted{}, zap.NewNop()), out
}

func TestTriesForLevel(t *testing.T) {
	tests := []struct{ level, want int }{{0, 8}, {1, 8}, {2, 7}, {3, 6}, {4, 6}}
	for _, tt := range tests {
		if got := TriesForLevel(tt.level); got != tt.want {
			t.Errorf("TriesForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestSequenceLength(t *testing.T) {
	tests := []struct{ level, want int }{{0, 3}, {1, 3}, {2, 4}, {3, 5}, {9, 5}}
	for _, tt := range tests {
		if got := SequenceLength(tt.level); got != tt.want {
			t.Errorf("SequenceLength(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGuessingWin(t *testing.T) {
	g, out := newGuessing("b\nx\nO\nn\ne\n")
	won, err := g.Play(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Contains(t, out.String(), "b o n e")
}

func TestGuessingEveryKeyCounts(t *testing.T) {
	// Level 3 allows 6 tries: a repeat, a blank, a word and three misses use them all.
	g, out := newGuessing("a\na\n\ntoo\nz\ny\nx\n")
	won, err := g.Play(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Contains(t, out.String(), `The word was "attic"`)
}

func TestGuessingInputClosed(t *testing.T) {
	g, _ := newGuessing("")
	_, err := g.Play(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ui.ErrQuit)
}

func TestStageBounds(t *testing.T) {
	assert.Equal(t, gallows[0], stage(-1))
	assert.Equal(t, gallows[8], stage(12))
}

func TestMemory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"correct sequence", "c\nA\nb\n", true},
		{"wrong letter", "c\nb\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			clock := &pacing.Counter{}
			console := ui.NewLineConsole(strings.NewReader(tt.input), out)
			m := NewMemory(console, &dice.Scripted{Ints: []int{2, 0, 1}}, clock, DefaultShowTicks, zap.NewNop())

			won, err := m.Play(context.Background(), 1, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, won)
			assert.Equal(t, DefaultShowTicks, clock.Ticks)
			assert.Contains(t, out.String(), "Memorize this sequence: C A B")
		})
	}
}
