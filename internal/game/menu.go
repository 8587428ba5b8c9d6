package game

import (
	"context"

	"github.com/samdwyer/baekgu/internal/gamedata"
	"github.com/samdwyer/baekgu/internal/progression"
	"github.com/samdwyer/baekgu/internal/ui"
	"github.com/samdwyer/baekgu/internal/world"
)

const exploreMenu = `What would you like to do?
--------------------------------------------------------
 1: 🐾  Move       - Move to a new location
 2: 🎒  Inventory  - Check and use your items
 3: 📊  Stats      - View your current condition
 4: ⚔️  Skills     - View your skills
 5: 💤  Sleep      - Take a nap to restore Hunger
 6: 📖  Help       - How to play
--------------------------------------------------------`

// chooseDirection runs the exploration menu until the player picks a valid direction.
func (g *Game) chooseDirection(ctx context.Context) (world.Direction, error) {
	c := g.character
	for {
		g.console.Print(exploreMenu)
		choice, err := g.console.Prompt("Enter the number of your choice: ")
		if err != nil {
			return 0, err
		}
		switch choice {
		case "1":
			g.console.Print("🐕 Directions Available:")
			for _, d := range world.Directions {
				g.console.Printf("%s : %s", d.Key(), d)
			}
			input, err := g.console.Prompt("Enter the direction you wish to travel (W/A/S/D): ")
			if err != nil {
				return 0, err
			}
			if dir, ok := world.ParseDirection(input); ok {
				return dir, nil
			}
			g.console.Print("❌ Invalid direction.")
		case "2":
			ui.PrintLines(g.console, ui.InventoryLines(c))
			if _, err := g.items.UseItems(ctx, c); err != nil {
				return 0, err
			}
		case "3":
			ui.PrintLines(g.console, ui.StatsLines(c))
		case "4":
			ui.PrintLines(g.console, ui.SkillLines(c))
		case "5":
			progression.Rest(g.clock, g.console, c, g.cfg.SleepTicks)
		case "6":
			ui.PrintLines(g.console, gamedata.NarrativeLines("help.txt"))
		default:
			g.console.Print("❌ Invalid input. Please enter a valid choice (1-6).")
		}
	}
}
