package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/baekgu/internal/entity"
)

const rule = "--------------------------------------------------------"

// StatsLines formats the character's stat sheet.
func StatsLines(c *entity.Character) []string {
	return []string{
		"📊 Your Stats:",
		rule,
		fmt.Sprintf("🔰 Level          : %d", c.Level),
		fmt.Sprintf("🩸 HP             : %d/%d", c.HP, c.MaxHP),
		fmt.Sprintf("⭐ Exp            : %d/%d", c.Exp, c.ExpThreshold()),
		fmt.Sprintf("❤️ Hearts         : %d/%d", c.Heart, c.MaxHeart),
		fmt.Sprintf("🍗 Hunger         : %d/%d", c.Hunger, c.MaxHunger),
		fmt.Sprintf("🗡️ Basic Attack   : Damage %d", c.BaseAttack),
		rule,
	}
}

// SkillLines formats the learned skills.
func SkillLines(c *entity.Character) []string {
	lines := []string{"⚔️ Your Skills", rule}
	for _, s := range c.Skills() {
		lines = append(lines, fmt.Sprintf("%-12s: Damage: %d, %s", s.Name, s.Damage, s.Description))
	}
	return append(lines, rule)
}

// InventoryLines formats the inventory in item-menu order.
func InventoryLines(c *entity.Character) []string {
	return []string{
		"🎒 Your Inventory",
		rule,
		fmt.Sprintf(" 1: 🩸 HP Potion (%d)   - Fully restores your HP", c.ItemCount(entity.ItemHPPotion)),
		fmt.Sprintf(" 2: 🍽️ Kibble (%d)      - Increases your Hunger by +1", c.ItemCount(entity.ItemKibble)),
		fmt.Sprintf(" 3: 🗝️ Key (%d)         - Not directly usable", c.ItemCount(entity.ItemKey)),
		rule,
	}
}

// SkillMeter renders spent uses as filled boxes followed by remaining uses.
func SkillMeter(used, remaining int) string {
	if used < 0 {
		used = 0
	}
	if remaining < 0 {
		remaining = 0
	}
	return "SKILL USES LEFT: " + strings.Repeat("🔳", used) + strings.Repeat("⬜️", remaining)
}

// HPLine renders an HP readout clamped at zero.
func HPLine(name string, hp, maxHP int) string {
	if hp < 0 {
		hp = 0
	}
	return fmt.Sprintf("*** 🩸 %s HP: %d/%d ***", name, hp, maxHP)
}

// EnemyCard formats the encounter introduction for an enemy.
func EnemyCard(e *entity.Enemy) []string {
	sep := "------------------------------------------------------"
	return []string{
		sep,
		"‼️‼️ ENEMY ENCOUNTERED ‼️‼️",
		sep,
		fmt.Sprintf("%s %s", e.Icon, e.Name),
		e.Description,
		fmt.Sprintf("Level: %s", e.Level),
		fmt.Sprintf("HP: %d/%d", e.DisplayHP(), e.MaxHP),
		sep,
	}
}

// PrintLines writes each line to the console.
func PrintLines(c Console, lines []string) {
	for _, l := range lines {
		c.Print(l)
	}
}
