// Package progression implements the reward, level-up, rest and item rules
// that move a character through the game.
package progression

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/telemetry"
)

// RewardKind enumerates the optional rewards rolled after a win.
type RewardKind int

const (
	RewardBone RewardKind = iota
	RewardHPPotion
	RewardPawBoots
	RewardKibble
	RewardBowlCollar
	RewardKey
)

// String returns the reward's display name.
func (k RewardKind) String() string {
	switch k {
	case RewardBone:
		return "Bone"
	case RewardHPPotion:
		return "HP Potion"
	case RewardPawBoots:
		return "Paw Boots"
	case RewardKibble:
		return "Kibble"
	case RewardBowlCollar:
		return "Bowl Collar"
	case RewardKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// Reward constants.
const (
	BoneAttackBonus  = 30
	PawBootsHPBonus  = 100
	BowlCollarHunger = 1
)

// ExpRange is the experience granted for every win.
var ExpRange = dice.Range{Min: 200, Max: 400}

// RewardRule is one row of the reward table: a kind, its independent drop
// rate, the loot line shown when it drops, and its effect.
type RewardRule struct {
	Kind   RewardKind
	Rate   float64
	Label  string
	Detail string
	Apply  func(c *entity.Character)
}

// RewardTable lists every optional reward in roll order.
var RewardTable = []RewardRule{
	{
		Kind:   RewardBone,
		Rate:   0.10,
		Label:  "Bone +1",
		Detail: fmt.Sprintf("Permanently increases Basic Attack damage by +%d", BoneAttackBonus),
		Apply:  func(c *entity.Character) { c.BaseAttack += BoneAttackBonus },
	},
	{
		Kind:   RewardHPPotion,
		Rate:   0.30,
		Label:  "HP Potion +1",
		Detail: "Fully restores current HP (saved to inventory)",
		Apply:  func(c *entity.Character) { c.AddItem(entity.ItemHPPotion, 1) },
	},
	{
		Kind:   RewardPawBoots,
		Rate:   0.10,
		Label:  "Paw Boots +1",
		Detail: fmt.Sprintf("Permanently increases maximum HP by +%d", PawBootsHPBonus),
		Apply:  func(c *entity.Character) { c.RaiseMaxHP(PawBootsHPBonus) },
	},
	{
		Kind:   RewardKibble,
		Rate:   0.30,
		Label:  "Kibble +1",
		Detail: "Increases Hunger by +1 (saved to inventory)",
		Apply:  func(c *entity.Character) { c.AddItem(entity.ItemKibble, 1) },
	},
	{
		Kind:   RewardBowlCollar,
		Rate:   0.30,
		Label:  "Bowl Collar",
		Detail: "Increases Hunger by +1 now",
		Apply:  func(c *entity.Character) { c.AdjustHunger(BowlCollarHunger) },
	},
	{
		Kind:   RewardKey,
		Rate:   0.50,
		Label:  "Key +1",
		Detail: "Used to move to the next level (saved to inventory)",
		Apply:  func(c *entity.Character) { c.AddItem(entity.ItemKey, 1) },
	},
}

// Loot describes what a single reward roll granted.
type Loot struct {
	Exp   int
	Kinds []RewardKind
	Lines []string // Presentation lines, header first
}

// Has reports whether the loot contains kind.
func (l Loot) Has(kind RewardKind) bool {
	for _, k := range l.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Rewarder grants post-victory rewards.
type Rewarder struct {
	src    dice.Source
	logger *zap.Logger
	table  []RewardRule
}

// NewRewarder creates a Rewarder using the standard reward table.
func NewRewarder(src dice.Source, logger *zap.Logger) *Rewarder {
	return &Rewarder{src: src, logger: logger, table: RewardTable}
}

// Grant always awards experience, then rolls every reward in the table
// independently. Any number of rewards, including none, may drop.
func (r *Rewarder) Grant(ctx context.Context, c *entity.Character) Loot {
	_, span := telemetry.Tracer("progression").Start(ctx, "progression.reward")
	defer span.End()

	exp := ExpRange.Roll(r.src)
	c.GainExp(exp)

	loot := Loot{Exp: exp}
	loot.Lines = append(loot.Lines,
		"🏆 Reward Earned 🏆",
		fmt.Sprintf("%-20s(%d/%d)", fmt.Sprintf(" - Exp +%d", exp), c.Exp, c.ExpThreshold()),
	)
	for _, rule := range r.table {
		if !dice.Chance(r.src, rule.Rate) {
			continue
		}
		rule.Apply(c)
		loot.Kinds = append(loot.Kinds, rule.Kind)
		loot.Lines = append(loot.Lines, fmt.Sprintf("%-20s %s", " - "+rule.Label, rule.Detail))
	}

	span.SetAttributes(
		attribute.Int("exp", exp),
		attribute.Int("drops", len(loot.Kinds)),
	)
	r.logger.Info("reward granted",
		zap.Int("exp", exp),
		zap.Int("total_exp", c.Exp),
		zap.Int("drops", len(loot.Kinds)),
	)
	return loot
}
