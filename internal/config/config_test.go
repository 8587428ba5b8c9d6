package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "baekgu.log",
		},
		Telemetry: TelemetryConfig{ServiceName: "baekgu"},
		Game: GameConfig{
			Tick:            time.Second,
			EnemyDelayTicks: 1,
			PlayersFile:     "players.txt",
			UI:              "screen",
			EncounterRate:   0.25,
			SkillUses:       5,
			ForcedRestTicks: 20,
			SleepTicks:      10,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultMatchesValidConfig(t *testing.T) {
	assert.Equal(t, validConfig(), Default())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
game:
  seed: 42
  tick: 10ms
  ui: plain
  encounter_rate: 0.5
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "baekgu.log", cfg.Logging.Output)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 10*time.Millisecond, cfg.Game.Tick)
	assert.Equal(t, "plain", cfg.Game.UI)
	assert.InDelta(t, 0.5, cfg.Game.EncounterRate, 1e-9)
	assert.Equal(t, 5, cfg.Game.SkillUses)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BAEKGU_GAME_SKILL_USES", "3")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Game.SkillUses)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Game.UI = "gui"
	cfg.Game.EncounterRate = 2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "game.ui")
	assert.Contains(t, err.Error(), "game.encounter_rate")
}

func TestValidateTelemetryServiceName(t *testing.T) {
	cfg := validConfig()
	cfg.Telemetry = TelemetryConfig{Enabled: true}
	assert.Error(t, cfg.Validate())
}

func TestEncounterRateProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Game.EncounterRate = rapid.Float64Range(-2, 2).Draw(t, "rate")
		err := cfg.Validate()
		inRange := cfg.Game.EncounterRate >= 0 && cfg.Game.EncounterRate <= 1
		if inRange && err != nil {
			t.Fatalf("rate %g rejected: %v", cfg.Game.EncounterRate, err)
		}
		if !inRange && err == nil {
			t.Fatalf("rate %g accepted", cfg.Game.EncounterRate)
		}
	})
}
