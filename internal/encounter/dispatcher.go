// Package encounter decides whether a move triggers an encounter and resolves it.
package encounter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/progression"
	"github.com/samdwyer/baekgu/internal/telemetry"
	"github.com/samdwyer/baekgu/internal/ui"
)

// DefaultRate is the chance of an encounter after each move.
const DefaultRate = 0.25

// Kind is the type of encounter.
type Kind int

const (
	KindNone Kind = iota
	KindBattle
	KindGuessing
	KindMemory
)

// Kinds lists the encounter kinds drawn uniformly when an encounter occurs.
var Kinds = []Kind{KindBattle, KindGuessing, KindMemory}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBattle:
		return "battle"
	case KindGuessing:
		return "guessing"
	case KindMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// MiniGame is a non-combat encounter. Play reports whether the player won;
// difficulty follows the character's level.
type MiniGame interface {
	Name() string
	Rules() string
	Play(ctx context.Context, difficulty int, c *entity.Character) (bool, error)
}

// Battler resolves a combat encounter.
type Battler interface {
	Battle(ctx context.Context, c *entity.Character, bossFight bool) (bool, error)
}

// Rewarder grants the post-victory rewards.
type Rewarder interface {
	Grant(ctx context.Context, c *entity.Character) progression.Loot
}

// Result describes what a dispatch did.
type Result struct {
	Kind Kind
	Won  bool
	Loot progression.Loot
}

// Dispatcher rolls for and resolves encounters.
type Dispatcher struct {
	console  ui.Console
	src      dice.Source
	rate     float64
	battler  Battler
	guessing MiniGame
	memory   MiniGame
	rewarder Rewarder
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher that triggers encounters with probability rate.
func NewDispatcher(console ui.Console, src dice.Source, rate float64, battler Battler,
	guessing, memory MiniGame, rewarder Rewarder, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		console:  console,
		src:      src,
		rate:     rate,
		battler:  battler,
		guessing: guessing,
		memory:   memory,
		rewarder: rewarder,
		logger:   logger,
	}
}

// Dispatch rolls for an encounter and, if one occurs, resolves it and grants
// rewards on a win. A loss costs nothing here.
func (d *Dispatcher) Dispatch(ctx context.Context, c *entity.Character) (Result, error) {
	ctx, span := telemetry.Tracer("encounter").Start(ctx, "encounter.dispatch")
	defer span.End()

	if !dice.Chance(d.src, d.rate) {
		span.SetAttributes(attribute.String("kind", KindNone.String()))
		return Result{Kind: KindNone}, nil
	}

	res := Result{Kind: dice.Pick(d.src, Kinds)}
	span.SetAttributes(attribute.String("kind", res.Kind.String()))
	d.logger.Info("encounter", zap.Stringer("kind", res.Kind), zap.Int("level", c.Level))

	var err error
	switch res.Kind {
	case KindBattle:
		d.console.Print("You are going to battle! Prepare yourself.")
		res.Won, err = d.battler.Battle(ctx, c, false)
	case KindGuessing:
		res.Won, err = d.playMiniGame(ctx, d.guessing, c)
	case KindMemory:
		res.Won, err = d.playMiniGame(ctx, d.memory, c)
	}
	if err != nil {
		span.RecordError(err)
		return res, err
	}

	span.SetAttributes(attribute.Bool("won", res.Won))
	if res.Won {
		res.Loot = d.rewarder.Grant(ctx, c)
		ui.PrintLines(d.console, res.Loot.Lines)
	}
	return res, nil
}

func (d *Dispatcher) playMiniGame(ctx context.Context, game MiniGame, c *entity.Character) (bool, error) {
	d.console.Printf("You are about to play %s!", game.Name())
	d.console.Print("📖 How to Play 📖")
	d.console.Print(game.Rules())
	if _, err := d.console.Prompt("Press Enter to continue..."); err != nil {
		return false, err
	}
	won, err := game.Play(ctx, c.Level, c)
	if err != nil {
		return false, err
	}
	if won {
		d.console.Print("Congratulations! You have won!")
	}
	return won, nil
}
