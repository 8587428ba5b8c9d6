package progression

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/pacing"
)

// Printer receives rest narration one line at a time.
type Printer interface {
	Print(line string)
}

// Rest blocks for ticks, narrating each tick, then restores hunger to max.
// It always runs to completion.
func Rest(clock pacing.Clock, out Printer, c *entity.Character, ticks int) {
	out.Print(fmt.Sprintf("💤 You are going to sleep for %d second(s) to regain energy.", ticks))
	for i := 1; i <= ticks; i++ {
		clock.Wait(1)
		out.Print(fmt.Sprintf("%d sec", i))
	}
	c.FillHunger()
	out.Print("You feel well-rested! Your Hunger has been fully restored.")
}

// ForcedRest runs a rest of ticks when hunger is exactly zero and reports whether it did.
func ForcedRest(clock pacing.Clock, out Printer, logger *zap.Logger, c *entity.Character, ticks int) bool {
	if c.Hunger != 0 {
		return false
	}
	logger.Info("forced rest", zap.Int("ticks", ticks))
	out.Print("⚠️⚠️⚠️ Oops! You have run out of energy. It's a nap time, Baekgu ⚠️⚠️⚠️")
	Rest(clock, out, c, ticks)
	return true
}
