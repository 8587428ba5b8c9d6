package combat

// DefaultSkillUses is the number of skill uses allowed per battle.
const DefaultSkillUses = 5

// SkillBudget counts skill uses within one battle.
type SkillBudget struct {
	Limit     int
	Remaining int
	Used      int
}

// NewSkillBudget returns a full budget of limit uses.
func NewSkillBudget(limit int) SkillBudget {
	if limit < 0 {
		limit = 0
	}
	return SkillBudget{Limit: limit, Remaining: limit}
}

// Available reports whether a skill may be used.
func (b *SkillBudget) Available() bool {
	return b.Remaining > 0
}

// Spend consumes one use. It returns false, changing nothing, when none remain.
func (b *SkillBudget) Spend() bool {
	if b.Remaining <= 0 {
		return false
	}
	b.Remaining--
	b.Used++
	return true
}
