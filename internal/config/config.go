// Package config provides Viper-based configuration loading for Baekgu.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultFile is the config file looked up in the working directory when no path is given.
const DefaultFile = "baekgu.yaml"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, "stdout" or "stderr". Defaults to a file so log
	// lines never mix with the game text.
	Output string `mapstructure:"output"`
}

// TelemetryConfig holds OpenTelemetry settings. Exporter endpoint and
// headers come from the standard OTEL_* environment variables.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// GameConfig holds session rules and pacing.
type GameConfig struct {
	// Seed for random number generation; 0 picks a time-based seed.
	Seed int64 `mapstructure:"seed"`
	// Tick is the wall-clock duration of one rest or pacing tick.
	Tick time.Duration `mapstructure:"tick"`
	// EnemyDelayTicks is the pause before an enemy counter-attack.
	EnemyDelayTicks int `mapstructure:"enemy_delay_ticks"`
	// PlayersFile is the newline-delimited list of registered player names.
	PlayersFile string `mapstructure:"players_file"`
	// UI selects the console: "screen" (full-screen terminal) or "plain" (line based).
	UI string `mapstructure:"ui"`
	// EncounterRate is the probability of an encounter after each move.
	EncounterRate float64 `mapstructure:"encounter_rate"`
	// SkillUses is the per-battle skill budget.
	SkillUses int `mapstructure:"skill_uses"`
	// ForcedRestTicks is the length of the nap taken when hunger runs out.
	ForcedRestTicks int `mapstructure:"forced_rest_ticks"`
	// SleepTicks is the length of a voluntary sleep.
	SleepTicks int `mapstructure:"sleep_ticks"`
}

// Config is the top-level configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Game      GameConfig      `mapstructure:"game"`
}

// Validate checks all configuration values and returns every violation found.
//
// Postcondition: Returns nil if valid, or an error listing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		errs = append(errs, "telemetry.service_name must not be empty when telemetry is enabled")
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Tick < 0 {
		errs = append(errs, fmt.Sprintf("game.tick must be >= 0, got %s", g.Tick))
	}
	if g.EnemyDelayTicks < 0 {
		errs = append(errs, fmt.Sprintf("game.enemy_delay_ticks must be >= 0, got %d", g.EnemyDelayTicks))
	}
	if g.PlayersFile == "" {
		errs = append(errs, "game.players_file must not be empty")
	}
	if g.UI != "screen" && g.UI != "plain" {
		errs = append(errs, fmt.Sprintf("game.ui must be one of [screen, plain], got %q", g.UI))
	}
	if g.EncounterRate < 0 || g.EncounterRate > 1 {
		errs = append(errs, fmt.Sprintf("game.encounter_rate must be in [0, 1], got %g", g.EncounterRate))
	}
	if g.SkillUses < 0 {
		errs = append(errs, fmt.Sprintf("game.skill_uses must be >= 0, got %d", g.SkillUses))
	}
	if g.ForcedRestTicks < 0 {
		errs = append(errs, fmt.Sprintf("game.forced_rest_ticks must be >= 0, got %d", g.ForcedRestTicks))
	}
	if g.SleepTicks < 0 {
		errs = append(errs, fmt.Sprintf("game.sleep_ticks must be >= 0, got %d", g.SleepTicks))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from defaults, an optional file and BAEKGU_* environment variables.
// An empty path looks for DefaultFile in the working directory; a missing
// default file is not an error, a missing explicit file is.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment variable overrides with BAEKGU_ prefix
	v.SetEnvPrefix("BAEKGU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration produced by defaults alone.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "baekgu.log")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "baekgu")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.tick", "1s")
	v.SetDefault("game.enemy_delay_ticks", 1)
	v.SetDefault("game.players_file", "players.txt")
	v.SetDefault("game.ui", "screen")
	v.SetDefault("game.encounter_rate", 0.25)
	v.SetDefault("game.skill_uses", 5)
	v.SetDefault("game.forced_rest_ticks", 20)
	v.SetDefault("game.sleep_ticks", 10)
}
