// Package main is the entry point for Baekgu.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/config"
	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/game"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/pacing"
	"github.com/samdwyer/baekgu/internal/players"
	"github.com/samdwyer/baekgu/internal/telemetry"
	"github.com/samdwyer/baekgu/internal/ui"
	"github.com/samdwyer/baekgu/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./"+config.DefaultFile+" if present)")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("game error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	sessionID := uuid.NewString()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName, sessionID)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return fmt.Errorf("loading enemies: %w", err)
	}
	skills, err := gamedata.LoadSkillCatalog()
	if err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	words, err := gamedata.LoadWordList()
	if err != nil {
		return fmt.Errorf("loading words: %w", err)
	}
	atlas, err := world.LoadAtlas()
	if err != nil {
		return fmt.Errorf("loading boards: %w", err)
	}

	console, closeConsole, err := newConsole(cfg.Game.UI)
	if err != nil {
		return err
	}
	defer closeConsole()

	g := game.New(game.Deps{
		Console:   console,
		Clock:     pacing.NewTickClock(cfg.Game.Tick),
		Source:    dice.NewSource(cfg.Game.Seed),
		Logger:    logger.With(zap.String("session_id", sessionID)),
		Players:   players.NewRegistry(cfg.Game.PlayersFile, logger),
		Enemies:   enemies,
		Skills:    skills,
		Words:     words,
		Atlas:     atlas,
		SessionID: sessionID,
	}, game.ConfigFrom(cfg.Game))

	status, err := g.Run(ctx)
	if errors.Is(err, ui.ErrQuit) {
		logger.Info("player quit")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("session finished", zap.Stringer("status", status))
	return nil
}

// newConsole builds the configured console and its cleanup function.
func newConsole(kind string) (ui.Console, func(), error) {
	if kind == "plain" {
		return ui.NewLineConsole(os.Stdin, os.Stdout), func() {}, nil
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("initializing screen: %w", err)
	}
	console := ui.NewScreenConsole(screen)
	return console, console.Close, nil
}
