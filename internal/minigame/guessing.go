// Package minigame implements the guessing and sequence-memory encounters.
// Both report only whether the player won; neither applies a penalty.
package minigame

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/ui"
)

// triesByLevel is the number of wrong guesses allowed per difficulty.
var triesByLevel = map[int]int{1: 8, 2: 7, 3: 6}

// TriesForLevel returns the guess allowance for difficulty, clamped to the defined levels.
func TriesForLevel(difficulty int) int {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 3 {
		difficulty = 3
	}
	return triesByLevel[difficulty]
}

// Guessing is a hangman game: reveal a secret word one letter at a time.
// Every entry counts as a guess, so repeats and non-letters cost a try.
type Guessing struct {
	console ui.Console
	words   *gamedata.WordList
	src     dice.Source
	logger  *zap.Logger
}

// NewGuessing creates a guessing game drawing secrets from words.
func NewGuessing(console ui.Console, words *gamedata.WordList, src dice.Source, logger *zap.Logger) *Guessing {
	return &Guessing{console: console, words: words, src: src, logger: logger}
}

// Name returns the game's display name.
func (g *Guessing) Name() string { return "Hangman" }

// Rules returns the how-to-play text.
func (g *Guessing) Rules() string {
	return "Try to guess the secret word, one letter at a time. You have limited tries. " +
		"Remember: every key counts as a guess, so be careful. Good luck!"
}

// Play runs one round at difficulty and reports whether the word was found.
func (g *Guessing) Play(_ context.Context, difficulty int, _ *entity.Character) (bool, error) {
	candidates := g.words.ForLevel(difficulty)
	if len(candidates) == 0 {
		return false, fmt.Errorf("no words for level %d", difficulty)
	}
	word := dice.Pick(g.src, candidates)
	tries := TriesForLevel(difficulty)
	guessed := make(map[rune]bool)

	for tries > 0 {
		g.console.Print(stage(tries))
		g.console.Print(mask(word, guessed))
		g.console.Printf("Tries left: %d", tries)

		input, err := g.console.Prompt("Guess a letter: ")
		if err != nil {
			return false, err
		}
		runes := []rune(strings.ToLower(input))
		if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
			g.console.Print("❌ That's not a single letter. It still counts as a guess!")
			tries--
			continue
		}
		r := runes[0]
		if guessed[r] {
			g.console.Printf("❌ You already guessed %q.", r)
			tries--
			continue
		}
		guessed[r] = true
		if !strings.ContainsRune(word, r) {
			g.console.Printf("❌ No %q in the word.", r)
			tries--
			continue
		}
		if solved(word, guessed) {
			g.console.Print(mask(word, guessed))
			g.logger.Info("guessing game won", zap.String("word", word), zap.Int("tries_left", tries))
			return true, nil
		}
	}

	g.console.Print(stage(0))
	g.console.Printf("Out of tries! The word was %q.", word)
	g.logger.Info("guessing game lost", zap.String("word", word))
	return false, nil
}

func mask(word string, guessed map[rune]bool) string {
	var b strings.Builder
	for i, r := range word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func solved(word string, guessed map[rune]bool) bool {
	for _, r := range word {
		if !guessed[r] {
			return false
		}
	}
	return true
}
