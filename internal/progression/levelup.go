package progression

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/baekgu/internal/entity"
	"github.com/samdwyer/baekgu/internal/telemetry"
)

// AttackIncrement is the base attack gained on every level-up.
const AttackIncrement = 5

// LevelHPIncrease is the max-HP gain applied when reaching each level.
var LevelHPIncrease = map[int]int{2: 200, 3: 250}

// LevelUpParams parameterizes a level transition.
type LevelUpParams struct {
	HPIncrease int
	Level      int
	Skills     []entity.Skill // Skills granted at Level
}

// ParamsForLevel builds the standard parameters for reaching level from a rolled skill table.
func ParamsForLevel(level int, skills map[int][]entity.Skill) LevelUpParams {
	return LevelUpParams{
		HPIncrease: LevelHPIncrease[level],
		Level:      level,
		Skills:     skills[level],
	}
}

// LevelUp applies a level transition. Every effect is applied; none can fail.
// Skills are merged, so skills from earlier levels are kept.
// It returns the announcement line.
func LevelUp(ctx context.Context, logger *zap.Logger, c *entity.Character, p LevelUpParams) string {
	_, span := telemetry.Tracer("progression").Start(ctx, "progression.level_up")
	defer span.End()

	c.RaiseMaxHP(p.HPIncrease)
	c.RestoreHP()
	c.Level = p.Level
	c.Exp = 0
	c.FillHunger()
	c.ClearItem(entity.ItemKey)
	c.BaseAttack += AttackIncrement
	c.LearnSkills(p.Skills)

	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}

	span.SetAttributes(
		attribute.Int("level", p.Level),
		attribute.Int("max_hp", c.MaxHP),
	)
	logger.Info("level up",
		zap.Int("level", p.Level),
		zap.Int("max_hp", c.MaxHP),
		zap.Int("base_attack", c.BaseAttack),
		zap.Strings("skills", names),
	)
	return fmt.Sprintf("Your maximum HP has been increased by %d. You earned new skills (%s). (max HP +%d)",
		p.HPIncrease, strings.Join(names, ", "), p.HPIncrease)
}
