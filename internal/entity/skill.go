package entity

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/samdwyer/baekgu/internal/dice"
	"github.com/samdwyer/baekgu/internal/gamedata"
)

// Skill is a learned special move with a fixed damage value.
type Skill struct {
	Name        string
	Damage      int
	Description string
	Level       int // Level that granted the skill
}

// SkillSet maps a case-folded skill name to the skill.
type SkillSet map[string]Skill

var folder = cases.Fold()

// SkillKey returns the lookup key for a skill name; matching is case-insensitive.
func SkillKey(name string) string {
	return folder.String(name)
}

// RollSkills instantiates the catalog, drawing each skill's damage once.
// The result is keyed by the level that grants the skills.
func RollSkills(catalog *gamedata.SkillCatalog, src dice.Source) map[int][]Skill {
	result := make(map[int][]Skill)
	for _, level := range catalog.Levels() {
		for _, def := range catalog.ForLevel(level) {
			result[level] = append(result[level], Skill{
				Name:        def.Name,
				Damage:      def.Damage.Roll(src),
				Description: def.Description,
				Level:       level,
			})
		}
	}
	return result
}

// LearnSkills merges skills into the character's set. Existing skills are kept.
func (c *Character) LearnSkills(skills []Skill) {
	if c.skills == nil {
		c.skills = SkillSet{}
	}
	for _, s := range skills {
		c.skills[SkillKey(s.Name)] = s
	}
}

// Skill looks up a learned skill by name, ignoring case.
func (c *Character) Skill(name string) (Skill, bool) {
	s, ok := c.skills[SkillKey(name)]
	return s, ok
}

// Skills returns learned skills ordered by the level that granted them, then by name.
func (c *Character) Skills() []Skill {
	out := make([]Skill, 0, len(c.skills))
	for _, s := range c.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out
}
