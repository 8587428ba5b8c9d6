// Package entity provides the character, enemy and avatar records the game mutates.
package entity

import (
	"github.com/samdwyer/baekgu/internal/dice"
)

// Item is an inventory item name.
type Item string

const (
	ItemHPPotion Item = "HP Potion"
	ItemKibble   Item = "Kibble"
	ItemKey      Item = "Key"
)

// InventoryItems lists items in menu order.
var InventoryItems = []Item{ItemHPPotion, ItemKibble, ItemKey}

// Starting values for a new character.
const (
	StartingMaxHP  = 250
	StartingHeart  = 10
	StartingHunger = 10
	MaxLevel       = 3
)

// BaseAttackRange is the range a new character's base attack is drawn from.
var BaseAttackRange = dice.Range{Min: 10, Max: 30}

// DefaultExpThresholds is the experience required to clear each level.
var DefaultExpThresholds = map[int]int{1: 1000, 2: 1300, 3: 1500}

// Character is the player's dog. Stat fields are exported for display and
// setup; gameplay mutations go through the clamping methods below.
type Character struct {
	Name string

	// Vital stats
	MaxHP, HP         int
	Level             int
	Exp               int
	ExpThresholds     map[int]int
	Heart, MaxHeart   int
	Hunger, MaxHunger int

	BaseAttack int
	skills     SkillSet
	inventory  map[Item]int
}

// NewCharacter creates a level-1 character that knows the given starting skills.
// Base attack is drawn from BaseAttackRange.
func NewCharacter(name string, starting []Skill, src dice.Source) *Character {
	thresholds := make(map[int]int, len(DefaultExpThresholds))
	for k, v := range DefaultExpThresholds {
		thresholds[k] = v
	}
	c := &Character{
		Name:          name,
		MaxHP:         StartingMaxHP,
		HP:            StartingMaxHP,
		Level:         1,
		ExpThresholds: thresholds,
		Heart:         StartingHeart,
		MaxHeart:      StartingHeart,
		Hunger:        StartingHunger,
		MaxHunger:     StartingHunger,
		BaseAttack:    BaseAttackRange.Roll(src),
		skills:        SkillSet{},
		inventory:     make(map[Item]int, len(InventoryItems)),
	}
	for _, item := range InventoryItems {
		c.inventory[item] = 0
	}
	c.LearnSkills(starting)
	return c
}

// IsAlive reports whether the character has hearts left.
func (c *Character) IsAlive() bool { return c.Heart > 0 }

// IsConscious reports whether the character can keep fighting this battle.
func (c *Character) IsConscious() bool { return c.HP > 0 }

// ExpThreshold returns the experience needed to clear the current level.
func (c *Character) ExpThreshold() int {
	if t, ok := c.ExpThresholds[c.Level]; ok {
		return t
	}
	return c.ExpThresholds[MaxLevel]
}

// TakeDamage reduces HP, clamped at 0, and returns actual damage taken.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// RestoreHP refills current HP to the maximum and returns the amount restored.
func (c *Character) RestoreHP() int {
	restored := c.MaxHP - c.HP
	c.HP = c.MaxHP
	return restored
}

// RaiseMaxHP increases maximum HP without touching current HP.
func (c *Character) RaiseMaxHP(amount int) {
	if amount > 0 {
		c.MaxHP += amount
	}
}

// AdjustHunger changes hunger by delta, clamped to [0, MaxHunger], and returns the new value.
func (c *Character) AdjustHunger(delta int) int {
	c.Hunger = clamp(c.Hunger+delta, 0, c.MaxHunger)
	return c.Hunger
}

// FillHunger restores hunger to its maximum.
func (c *Character) FillHunger() {
	c.Hunger = c.MaxHunger
}

// LoseHeart removes one heart, clamped at 0, and refills current HP.
// It returns false when there was no heart left to lose.
func (c *Character) LoseHeart() bool {
	c.HP = c.MaxHP
	if c.Heart <= 0 {
		c.Heart = 0
		return false
	}
	c.Heart--
	return true
}

// GainExp adds experience.
func (c *Character) GainExp(amount int) {
	if amount > 0 {
		c.Exp += amount
	}
}

// ItemCount returns the count of an item, treating a missing entry as zero.
func (c *Character) ItemCount(item Item) int {
	return c.inventory[item]
}

// AddItem increments an item count by n, initializing a missing entry at zero.
func (c *Character) AddItem(item Item, n int) int {
	if c.inventory == nil {
		c.inventory = make(map[Item]int)
	}
	if n > 0 {
		c.inventory[item] += n
	}
	return c.inventory[item]
}

// ConsumeItem removes one item. It returns false, changing nothing, when none are held.
func (c *Character) ConsumeItem(item Item) bool {
	if c.inventory[item] <= 0 {
		return false
	}
	c.inventory[item]--
	return true
}

// ClearItem resets an item count to zero.
func (c *Character) ClearItem(item Item) {
	if c.inventory == nil {
		c.inventory = make(map[Item]int)
	}
	c.inventory[item] = 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
