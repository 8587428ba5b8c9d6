package game

import (
	"context"
	"strings"

	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/progression"
	"github.com/samdwyer/baekgu/internal/ui"
)

// itemChoices maps menu input to inventory items.
var itemChoices = map[string]entity.Item{
	"1":         entity.ItemHPPotion,
	"hp potion": entity.ItemHPPotion,
	"2":         entity.ItemKibble,
	"kibble":    entity.ItemKibble,
	"3":         entity.ItemKey,
	"key":       entity.ItemKey,
}

// itemMenu is the item-use prompt shared by exploration and battle.
type itemMenu struct {
	console ui.Console
}

// UseItems loops over item choices until the player types q, which closes the menu.
func (m *itemMenu) UseItems(_ context.Context, c *entity.Character) (bool, error) {
	for {
		input, err := m.console.Prompt("Which item would you like to use? (Enter the item number or type 'q' to quit): ")
		if err != nil {
			return false, err
		}
		input = strings.ToLower(input)
		if input == "q" {
			return true, nil
		}
		item, ok := itemChoices[input]
		if !ok {
			m.console.Print("❌ Invalid input. Please enter a correct option from the list.")
			continue
		}
		msg, _ := progression.UseItem(c, item)
		m.console.Print(msg)
	}
}
