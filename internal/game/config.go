package game

import (
	"github.com/samdwyer/baekgu/internal/combat"
	"github.com/samdwyer/baekgu/internal/config"
	"github.com/samdwyer/baekgu/internal/encounter"
	"github.com/samdwyer/baekgu/internal/minigame"
)

// Config holds session rules.
type Config struct {
	// Seed for random number generation. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed            int64
	EncounterRate   float64
	SkillUses       int
	EnemyDelayTicks int
	ForcedRestTicks int
	SleepTicks      int
	MemoryShowTicks int
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		EncounterRate:   encounter.DefaultRate,
		SkillUses:       combat.DefaultSkillUses,
		EnemyDelayTicks: 1,
		ForcedRestTicks: 20,
		SleepTicks:      10,
		MemoryShowTicks: minigame.DefaultShowTicks,
	}
}

// ConfigFrom builds session rules from loaded configuration.
func ConfigFrom(c config.GameConfig) Config {
	cfg := DefaultConfig()
	cfg.Seed = c.Seed
	cfg.EncounterRate = c.EncounterRate
	cfg.SkillUses = c.SkillUses
	cfg.EnemyDelayTicks = c.EnemyDelayTicks
	cfg.ForcedRestTicks = c.ForcedRestTicks
	cfg.SleepTicks = c.SleepTicks
	return cfg
}
