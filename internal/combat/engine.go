package combat

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/pacing"
	"github.com/samdwyer/baekgu/internal/telemetry"
	"github.com/samdwyer/baekgu/internal/ui"
)

// Battle lines.
const (
	VictoryLine = "🎉 Woo hoo! You won against a ruff battle. Time for a treat! 🎉"
	DefeatLine  = "I collapsed on the floor. The enemy stands victorious as my vision fades to darkness..."
)

const actionMenu = `What is your next move?
--------------------------------------------------------
 1: 🗡️  Attack     - Attack with basic attack
 2: ✨  Skill      - Use a special skill
 3: 🐕  Flee       - Run away from the battle (Heart -1)
 4: 📊  Stats      - View your current condition
 5: 🎒  Inventory  - Use an item from your inventory
--------------------------------------------------------`

var attackDescriptions = []string{
	"🗡️ You strike fiercely, leaving a mark on the enemy!",
	"🗡️ Your attack lands cleanly, leaving the enemy struggling to recover!",
	"🗡️ With a focused attack, you manage to break through the enemy's guard, causing visible pain!",
	"🗡️ Your powerful attack stunned the enemy.",
	"🗡️ Your strike pierced through the enemy with precision.",
}

// Inventory runs the in-battle item menu.
type Inventory interface {
	// UseItems lets the player use items and reports whether the player
	// closed the menu, which returns to the action menu without an enemy turn.
	UseItems(ctx context.Context, c *entity.Character) (closed bool, err error)
}

// Options tunes an Engine.
type Options struct {
	SkillUses       int // Per-battle skill budget
	EnemyDelayTicks int // Pause before each enemy counter-attack
}

// Outcome summarizes a finished battle.
type Outcome struct {
	Phase  Phase
	Won    bool
	Enemy  *entity.Enemy // Reference copy with the original HP
	Turns  int
	Budget SkillBudget
}

// Engine runs battles against enemies drawn from a registry.
type Engine struct {
	console   ui.Console
	registry  *gamedata.EnemyRegistry
	src       dice.Source
	clock     pacing.Clock
	inventory Inventory
	logger    *zap.Logger
	opts      Options
}

// NewEngine creates a battle engine.
func NewEngine(console ui.Console, registry *gamedata.EnemyRegistry, src dice.Source, clock pacing.Clock,
	inventory Inventory, logger *zap.Logger, opts Options) *Engine {
	return &Engine{
		console:   console,
		registry:  registry,
		src:       src,
		clock:     clock,
		inventory: inventory,
		logger:    logger,
		opts:      opts,
	}
}

// Battle fights one enemy suited to the character's level, or the boss,
// and reports whether the character won.
func (e *Engine) Battle(ctx context.Context, c *entity.Character, bossFight bool) (bool, error) {
	out, err := e.Fight(ctx, c, bossFight)
	return out.Won, err
}

// Fight selects an enemy and runs the battle to a terminal phase.
func (e *Engine) Fight(ctx context.Context, c *entity.Character, bossFight bool) (Outcome, error) {
	enemy, err := entity.NewEnemy(e.registry, c.Level, bossFight, e.src)
	if err != nil {
		return Outcome{}, fmt.Errorf("selecting enemy: %w", err)
	}
	return e.FightEnemy(ctx, c, enemy, bossFight)
}

// battle is the per-call state. The enemy is a working copy of ref.
type battle struct {
	c      *entity.Character
	ref    *entity.Enemy
	enemy  *entity.Enemy
	boss   bool
	phase  Phase
	budget SkillBudget
	turns  int
}

// FightEnemy runs a battle against ref. ref itself is never mutated.
func (e *Engine) FightEnemy(ctx context.Context, c *entity.Character, ref *entity.Enemy, bossFight bool) (Outcome, error) {
	ctx, span := telemetry.Tracer("combat").Start(ctx, "combat.battle")
	defer span.End()

	b := &battle{
		c:     c,
		ref:   ref,
		enemy: ref.Copy(),
		boss:  bossFight,
		phase: PhaseEncounterStart,
	}
	e.start(b)

	for c.IsAlive() && b.enemy.IsAlive() && !b.phase.IsTerminal() {
		var err error
		switch b.phase {
		case PhasePlayerTurn:
			b.phase, err = e.playerTurn(ctx, b)
		case PhaseEnemyTurn:
			b.phase = e.enemyTurn(ctx, b)
		}
		if err != nil {
			span.RecordError(err)
			return b.outcome(), err
		}
	}
	if !b.phase.IsTerminal() {
		// Entered with no hearts left.
		b.phase = PhaseDefeat
	}
	e.finish(b)

	out := b.outcome()
	span.SetAttributes(
		attribute.String("enemy", ref.Name),
		attribute.Bool("boss", bossFight),
		attribute.String("outcome", out.Phase.String()),
		attribute.Int("turns", out.Turns),
		attribute.Int("skill_uses", out.Budget.Used),
	)
	e.logger.Info("battle finished",
		zap.String("enemy", ref.Name),
		zap.Bool("boss", bossFight),
		zap.Stringer("outcome", out.Phase),
		zap.Int("turns", out.Turns),
		zap.Int("hearts", c.Heart),
	)
	return out, nil
}

func (b *battle) outcome() Outcome {
	return Outcome{
		Phase:  b.phase,
		Won:    b.phase == PhaseVictory,
		Enemy:  b.ref,
		Turns:  b.turns,
		Budget: b.budget,
	}
}

func (e *Engine) start(b *battle) {
	b.budget = NewSkillBudget(e.opts.SkillUses)
	color := tcellColor(b.ref)
	e.console.Highlight(color, ui.EnemyCard(b.ref)...)
	e.logger.Info("battle started",
		zap.String("enemy", b.ref.Name),
		zap.Int("enemy_hp", b.ref.MaxHP),
		zap.Bool("boss", b.boss),
	)
	b.phase = PhasePlayerTurn
}

func (e *Engine) finish(b *battle) {
	switch b.phase {
	case PhaseVictory:
		if !b.boss {
			e.console.Print(VictoryLine)
		}
	case PhaseDefeat:
		e.console.Print(DefeatLine)
		e.loseHeart(b.c)
	}
}

// playerTurn resolves exactly one player action and returns the next phase.
// Side-channel choices and invalid input return PhasePlayerTurn.
func (e *Engine) playerTurn(ctx context.Context, b *battle) (Phase, error) {
	e.console.Print(actionMenu)
	choice, err := e.console.Prompt("Enter the number of your choice: ")
	if err != nil {
		return b.phase, err
	}

	switch strings.ToLower(choice) {
	case "1":
		return e.attack(ctx, b, "basic_attack", b.c.BaseAttack), nil
	case "2":
		return e.useSkill(ctx, b)
	case "3":
		b.turns++
		e.console.Printf("%s seems to be too strong for me.. Let me retreat before it's too late!", b.ref.Name)
		e.loseHeart(b.c)
		return PhaseFled, nil
	case "4":
		ui.PrintLines(e.console, ui.StatsLines(b.c))
		return PhasePlayerTurn, nil
	case "5":
		ui.PrintLines(e.console, ui.InventoryLines(b.c))
		closed, err := e.inventory.UseItems(ctx, b.c)
		if err != nil {
			return b.phase, err
		}
		if closed {
			return PhasePlayerTurn, nil
		}
		return PhaseEnemyTurn, nil
	default:
		e.console.Print("❌ Invalid input. Please enter a valid choice (1-5).")
		return PhasePlayerTurn, nil
	}
}

// useSkill prompts for a skill name until a known skill is chosen. A blank
// answer or "q" backs out to the action menu.
func (e *Engine) useSkill(ctx context.Context, b *battle) (Phase, error) {
	if !b.budget.Available() {
		e.console.Print("❌ You can't use skill anymore as you ran out of uses already.")
		e.console.Print(ui.SkillMeter(b.budget.Used, b.budget.Remaining))
		return PhasePlayerTurn, nil
	}
	for {
		e.console.Printf("In each battle, you are allowed a total of %d skill uses.", b.budget.Limit)
		e.console.Print(ui.SkillMeter(b.budget.Used, b.budget.Remaining))
		ui.PrintLines(e.console, ui.SkillLines(b.c))

		name, err := e.console.Prompt("Choose skill you would like to use: ")
		if err != nil {
			return b.phase, err
		}
		if name == "" || strings.EqualFold(name, "q") {
			return PhasePlayerTurn, nil
		}
		skill, ok := b.c.Skill(name)
		if !ok {
			e.console.Print("❌ Invalid skill. Please enter a valid skill from the list above.")
			continue
		}
		b.budget.Spend()
		return e.attack(ctx, b, skill.Name, skill.Damage), nil
	}
}

// attack applies damage to the enemy and checks for victory before any counter-attack.
func (e *Engine) attack(ctx context.Context, b *battle, action string, damage int) Phase {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.turn")
	defer span.End()

	b.turns++
	e.console.Print(strings.ReplaceAll(dice.Pick(e.src, attackDescriptions), "enemy", b.ref.Name))
	dealt := b.enemy.TakeDamage(damage)
	e.console.Print(ui.HPLine(b.ref.Name, b.enemy.HP, b.ref.MaxHP))

	span.SetAttributes(
		attribute.String("action", action),
		attribute.Int("damage", dealt),
		attribute.Int("turn", b.turns),
		attribute.Int("enemy_hp", b.enemy.HP),
	)
	e.logger.Debug("player attack",
		zap.String("action", action),
		zap.Int("damage", dealt),
		zap.Int("enemy_hp", b.enemy.HP),
	)

	if !b.enemy.IsAlive() {
		return PhaseVictory
	}
	return PhaseEnemyTurn
}

// enemyTurn picks one of the enemy's moves uniformly and applies it.
func (e *Engine) enemyTurn(ctx context.Context, b *battle) Phase {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.turn")
	defer span.End()

	e.clock.Wait(e.opts.EnemyDelayTicks)
	move := dice.Pick(e.src, b.enemy.Moves)
	taken := b.c.TakeDamage(move.Damage)

	e.console.Printf("😣 Ouch! %s fought back!", b.ref.Name)
	e.console.Printf("%s used %s on you!", b.ref.Name, move.Name)
	e.console.Print(ui.HPLine("Your", b.c.HP, b.c.MaxHP))

	span.SetAttributes(
		attribute.String("action", move.Name),
		attribute.Int("damage", taken),
		attribute.Int("character_hp", b.c.HP),
	)
	e.logger.Debug("enemy attack",
		zap.String("move", move.Name),
		zap.Int("damage", taken),
		zap.Int("character_hp", b.c.HP),
	)

	if !b.c.IsConscious() {
		return PhaseDefeat
	}
	return PhasePlayerTurn
}

func (e *Engine) loseHeart(c *entity.Character) {
	c.LoseHeart()
	e.console.Printf("💔 You lost 1 Heart. You have %d Heart(s) left.", c.Heart)
}
