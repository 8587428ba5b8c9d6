package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// WordsFile represents the structure of words.yaml.
type WordsFile struct {
	Levels map[int][]string `yaml:"levels"`
}

// WordList holds guessing-game words keyed by difficulty level.
type WordList struct {
	levels map[int][]string
}

// NewWordList creates a word list, lower-casing every word.
func NewWordList(levels map[int][]string) *WordList {
	normalized := make(map[int][]string, len(levels))
	for l, words := range levels {
		for _, w := range words {
			normalized[l] = append(normalized[l], strings.ToLower(strings.TrimSpace(w)))
		}
	}
	return &WordList{levels: normalized}
}

// LoadWordList loads the embedded words.yaml.
func LoadWordList() (*WordList, error) {
	file, err := Load[WordsFile]("words.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("no words loaded from words.yaml")
	}
	w := NewWordList(file.Levels)
	for l, words := range w.levels {
		for _, word := range words {
			if word == "" {
				return nil, fmt.Errorf("words: empty word at level %d", l)
			}
		}
	}
	return w, nil
}

// ForLevel returns the words for level, falling back to the closest lower level.
func (w *WordList) ForLevel(level int) []string {
	for l := level; l > 0; l-- {
		if words := w.levels[l]; len(words) > 0 {
			return words
		}
	}
	return nil
}
