package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/baekgu/internal/dice"
)

// StatTier holds the ranges an enemy's stats are drawn from.
type StatTier struct {
	HP     dice.Range `yaml:"hp"`
	Attack dice.Range `yaml:"attack"` // Basic attack damage
	Skill  dice.Range `yaml:"skill"`  // Named move damage
}

// Validate checks all ranges in the tier.
func (t StatTier) Validate() error {
	if err := t.HP.Validate(); err != nil {
		return fmt.Errorf("hp: %w", err)
	}
	if err := t.Attack.Validate(); err != nil {
		return fmt.Errorf("attack: %w", err)
	}
	if err := t.Skill.Validate(); err != nil {
		return fmt.Errorf("skill: %w", err)
	}
	return nil
}

// EnemyDef defines an enemy template loaded from YAML.
type EnemyDef struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g., "mouse")
	Name        string `yaml:"name"`        // Display name (e.g., "Mouse")
	Icon        string `yaml:"icon"`        // Flavor icon shown on the encounter card
	Description string `yaml:"description"` // Encounter card text
	Level       string `yaml:"level"`       // Level tag shown on the encounter card
	Tier        string `yaml:"tier"`        // Key into EnemiesFile.Tiers
	Move        string `yaml:"move"`        // Name of the enemy's skill move
	Color       string `yaml:"color"`       // Hex color code (e.g., "#00FF00")
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.yaml.
type EnemiesFile struct {
	Tiers  map[string]StatTier `yaml:"tiers"`
	Levels map[int][]EnemyDef  `yaml:"levels"`
	Boss   EnemyDef            `yaml:"boss"`
}
