package minigame

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/pacing"
	"github.com/samdwyer/baekgu/internal/ui"
)

// DefaultShowTicks is how long the sequence stays visible.
const DefaultShowTicks = 5

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// sequenceByLevel is the sequence length per difficulty.
var sequenceByLevel = map[int]int{1: 3, 2: 4, 3: 5}

// SequenceLength returns the sequence length for difficulty, clamped to the defined levels.
func SequenceLength(difficulty int) int {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 3 {
		difficulty = 3
	}
	return sequenceByLevel[difficulty]
}

// Memory shows a letter sequence, hides it, then asks for it back one letter at a time.
type Memory struct {
	console   ui.Console
	src       dice.Source
	clock     pacing.Clock
	showTicks int
	logger    *zap.Logger
}

// NewMemory creates a sequence-memory game.
func NewMemory(console ui.Console, src dice.Source, clock pacing.Clock, showTicks int, logger *zap.Logger) *Memory {
	return &Memory{console: console, src: src, clock: clock, showTicks: showTicks, logger: logger}
}

// Name returns the game's display name.
func (m *Memory) Name() string { return "Memory Game" }

// Rules returns the how-to-play text.
func (m *Memory) Rules() string {
	return fmt.Sprintf("You'll be shown a sequence of letters. You have %d seconds to memorize it. "+
		"Then, enter each letter one at a time in the correct order. Good luck!", m.showTicks)
}

// Play runs one round at difficulty. The first wrong letter loses.
func (m *Memory) Play(_ context.Context, difficulty int, _ *entity.Character) (bool, error) {
	seq := make([]string, SequenceLength(difficulty))
	for i := range seq {
		seq[i] = string(alphabet[m.src.Intn(len(alphabet))])
	}

	m.console.Printf("Memorize this sequence: %s", strings.Join(seq, " "))
	m.clock.Wait(m.showTicks)
	m.console.Clear()

	for i, want := range seq {
		got, err := m.console.Prompt(fmt.Sprintf("Letter %d: ", i+1))
		if err != nil {
			return false, err
		}
		if !strings.EqualFold(got, want) {
			m.console.Printf("❌ Wrong! The sequence was %s.", strings.Join(seq, " "))
			m.logger.Info("memory game lost", zap.Int("length", len(seq)), zap.Int("correct", i))
			return false, nil
		}
	}
	m.logger.Info("memory game won", zap.Int("length", len(seq)))
	return true, nil
}
