package progression

import (
	"fmt"

	"github.com/samdwyer/baekgu/internal/entity"
)

// KibbleHunger is the hunger restored by one Kibble.
const KibbleHunger = 1

// UseItem applies one item from the inventory and returns the message to show.
// A missing item or the Key changes nothing.
func UseItem(c *entity.Character, item entity.Item) (string, bool) {
	if item == entity.ItemKey {
		return "🔑 The Key is used automatically when you reach the door.", false
	}
	if !c.ConsumeItem(item) {
		return fmt.Sprintf("❌ You don't have any %s.", item), false
	}
	switch item {
	case entity.ItemHPPotion:
		c.RestoreHP()
		return fmt.Sprintf("🧪 You used an HP Potion. HP fully restored (%d/%d).", c.HP, c.MaxHP), true
	case entity.ItemKibble:
		c.AdjustHunger(KibbleHunger)
		return fmt.Sprintf("🦴 You ate some Kibble. Hunger +%d (%d/%d).", KibbleHunger, c.Hunger, c.MaxHunger), true
	default:
		c.AddItem(item, 1)
		return fmt.Sprintf("❌ %s can't be used.", item), false
	}
}
