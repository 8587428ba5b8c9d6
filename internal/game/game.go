// Package game provides the exploration loop that drives a session.
package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/combat"
	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/encounter"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/minigame"
	"github.com/samdwyer/baekgu/internal/pacing"
	"github.com/samdwyer/baekgu/internal/progression"
	"github.com/samdwyer/baekgu/internal/telemetry"
	"github.com/samdwyer/baekgu/internal/ui"
	"github.com/samdwyer/baekgu/internal/world"
)

// Session-ending lines.
const (
	wonLine  = "Congratulations! You made it home safely with Haru. Your pawrents and Haru shower you with love and kisses. Great job, hero! 🐾"
	lostLine = "Game over! You have lost all your Hearts. Try again and show your courage once more!"
)

// PlayerRegistry tells new players from returning ones.
type PlayerRegistry interface {
	IsReturning(name string) (bool, error)
}

// Deps are the collaborators a session needs.
type Deps struct {
	Console   ui.Console
	Clock     pacing.Clock
	Source    dice.Source
	Logger    *zap.Logger
	Players   PlayerRegistry
	Enemies   *gamedata.EnemyRegistry
	Skills    *gamedata.SkillCatalog
	Words     *gamedata.WordList
	Atlas     *world.Atlas
	SessionID string
}

// Game holds the entire session state.
type Game struct {
	console    ui.Console
	clock      pacing.Clock
	src        dice.Source
	logger     *zap.Logger
	players    PlayerRegistry
	atlas      *world.Atlas
	skills     map[int][]entity.Skill
	items      *itemMenu
	combat     *combat.Engine
	dispatcher *encounter.Dispatcher
	cfg        Config
	sessionID  string

	character *entity.Character
	grid      *world.Grid
	avatar    *entity.Avatar
	status    Status
}

// New wires a session from its collaborators.
func New(deps Deps, cfg Config) *Game {
	items := &itemMenu{console: deps.Console}
	engine := combat.NewEngine(deps.Console, deps.Enemies, deps.Source, deps.Clock, items, deps.Logger,
		combat.Options{SkillUses: cfg.SkillUses, EnemyDelayTicks: cfg.EnemyDelayTicks})
	dispatcher := encounter.NewDispatcher(deps.Console, deps.Source, cfg.EncounterRate, engine,
		minigame.NewGuessing(deps.Console, deps.Words, deps.Source, deps.Logger),
		minigame.NewMemory(deps.Console, deps.Source, deps.Clock, cfg.MemoryShowTicks, deps.Logger),
		progression.NewRewarder(deps.Source, deps.Logger),
		deps.Logger,
	)
	return &Game{
		console:    deps.Console,
		clock:      deps.Clock,
		src:        deps.Source,
		logger:     deps.Logger,
		players:    deps.Players,
		atlas:      deps.Atlas,
		skills:     entity.RollSkills(deps.Skills, deps.Source),
		items:      items,
		combat:     engine,
		dispatcher: dispatcher,
		cfg:        cfg,
		sessionID:  deps.SessionID,
	}
}

// Character returns the session's character, nil before Start.
func (g *Game) Character() *entity.Character { return g.character }

// Status returns the session's end condition.
func (g *Game) Status() Status { return g.status }

// Run plays a whole session and returns how it ended.
func (g *Game) Run(ctx context.Context) (Status, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.run")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", g.sessionID))

	if err := g.Start(ctx); err != nil {
		return g.status, err
	}
	for g.status == StatusPlaying {
		if err := g.Step(ctx); err != nil {
			span.RecordError(err)
			return g.status, err
		}
	}

	switch g.status {
	case StatusWon:
		g.console.Print(wonLine)
	case StatusLost:
		g.console.Print(lostLine)
	}
	span.SetAttributes(
		attribute.String("status", g.status.String()),
		attribute.Int("level", g.character.Level),
	)
	g.logger.Info("session ended", zap.Stringer("status", g.status), zap.Int("level", g.character.Level))
	return g.status, nil
}

// Start greets the player and sets up the character on the first board.
func (g *Game) Start(ctx context.Context) error {
	name, err := g.console.Prompt("Hi, there! What's your name? : ")
	if err != nil {
		return err
	}
	returning, err := g.players.IsReturning(name)
	if err != nil {
		return fmt.Errorf("checking player: %w", err)
	}
	if returning {
		g.console.Printf("You're already a player! Welcome back, %s!", name)
	} else {
		g.console.Print("✅ New user is created!")
		g.console.Printf("Welcome to Baekgu, %s!", name)
		ui.PrintLines(g.console, gamedata.NarrativeLines("intro.txt"))
	}

	g.character = entity.NewCharacter(name, g.skills[1], g.src)
	if err := g.enterBoard(1); err != nil {
		return err
	}
	g.status = StatusPlaying
	g.logger.Info("session started",
		zap.String("player", name),
		zap.Bool("returning", returning),
		zap.Int("base_attack", g.character.BaseAttack),
	)
	return nil
}

// Step runs one exploration iteration: choose and attempt a move, then apply
// hunger, encounters and level gates. A blocked move ends the step early.
func (g *Game) Step(ctx context.Context) error {
	c := g.character
	g.console.RenderGrid(g.grid)
	if c.Hunger == 1 {
		g.console.Print("🚨🚨🚨 You only have 1 Hunger! You must sleep now. 🚨🚨🚨")
	}

	dir, err := g.chooseDirection(ctx)
	if err != nil {
		return err
	}
	if !g.tryMove(ctx, dir) {
		return nil
	}
	progression.ForcedRest(g.clock, g.console, g.logger, c, g.cfg.ForcedRestTicks)

	if _, err := g.dispatcher.Dispatch(ctx, c); err != nil {
		return err
	}
	if err := g.checkGates(ctx); err != nil {
		return err
	}
	if !c.IsAlive() {
		g.status = StatusLost
	}
	return nil
}

// tryMove attempts one step; a successful step costs one hunger.
func (g *Game) tryMove(ctx context.Context, dir world.Direction) bool {
	if !g.grid.Move(ctx, g.avatar, dir) {
		g.console.Print("❌ You can't move that way.")
		return false
	}
	g.character.AdjustHunger(-1)
	g.console.Printf("You moved one step %s. Everything seems quiet.", dir)
	return true
}

// checkGates evaluates the level gates in order against the current position.
func (g *Game) checkGates(ctx context.Context) error {
	for _, gate := range g.atlas.Gates() {
		if !gate.Open(g.avatar.Row, g.avatar.Col, g.character) {
			continue
		}
		g.console.Print(gate.Announce())
		var err error
		switch gate.Kind {
		case world.GateExit:
			err = g.advance(ctx, gate.Level+1)
		case world.GateBoss:
			err = g.fightBoss(ctx, gate.Level)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// advance moves the character to the next board and applies the level-up.
func (g *Game) advance(ctx context.Context, level int) error {
	if err := g.loadBoard(level); err != nil {
		return err
	}
	g.console.Print(progression.LevelUp(ctx, g.logger, g.character, progression.ParamsForLevel(level, g.skills)))
	g.describeBoard()
	return nil
}

// fightBoss runs the boss battle. Losing sends the character back to the
// entry of the boss board with experience reset.
func (g *Game) fightBoss(ctx context.Context, level int) error {
	won, err := g.combat.Battle(ctx, g.character, true)
	if err != nil {
		return err
	}
	if won {
		g.console.Print("🎉 Victory! You defeated the boss, but soon realized it was all a misunderstanding " +
			"with Majestic Fluffy BunBun. With Haru safe, it's time to return home.")
		g.status = StatusWon
		return nil
	}
	g.console.Print("😞 Oh no! You weren't strong enough to defeat the boss this time. Train harder and grow " +
		"stronger! Returning to checkpoint - the start of Level 3. Keep going, you can do this!\n(Exp reset to 0)")
	g.character.Exp = 0
	g.logger.Info("boss checkpoint", zap.Int("hearts", g.character.Heart))
	return g.loadBoard(level)
}

func (g *Game) enterBoard(level int) error {
	if err := g.loadBoard(level); err != nil {
		return err
	}
	g.describeBoard()
	return nil
}

// loadBoard replaces the grid and places a new avatar at its entry.
func (g *Game) loadBoard(level int) error {
	grid, err := g.atlas.Board(level)
	if err != nil {
		return err
	}
	g.grid = grid
	g.avatar = grid.PlaceAtEntry()
	return nil
}

func (g *Game) describeBoard() {
	g.console.Print("")
	g.console.Print(g.grid.Title)
	g.console.Print(g.grid.Description)
}
