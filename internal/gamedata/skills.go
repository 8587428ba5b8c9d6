package gamedata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/baekgu/internal/dice"
)

// SkillDef defines a skill a character learns on reaching a level.
type SkillDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Damage      dice.Range `yaml:"damage"` // Rolled once when the catalog is instantiated
}

// SkillsFile represents the structure of skills.yaml.
type SkillsFile struct {
	Levels map[int][]SkillDef `yaml:"levels"`
}

// SkillCatalog holds skill definitions keyed by the level that grants them.
type SkillCatalog struct {
	levels map[int][]SkillDef
}

// NewSkillCatalog creates a catalog from per-level skill definitions.
func NewSkillCatalog(levels map[int][]SkillDef) *SkillCatalog {
	return &SkillCatalog{levels: levels}
}

// LoadSkillCatalog loads and validates the embedded skills.yaml.
func LoadSkillCatalog() (*SkillCatalog, error) {
	file, err := Load[SkillsFile]("skills.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("no skills loaded from skills.yaml")
	}
	c := NewSkillCatalog(file.Levels)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every skill has a name and a valid damage range.
func (c *SkillCatalog) Validate() error {
	for level, defs := range c.levels {
		for i, def := range defs {
			if def.Name == "" {
				return fmt.Errorf("skills: level %d skill[%d] must have a name", level, i)
			}
			if err := def.Damage.Validate(); err != nil {
				return fmt.Errorf("skills: %s damage: %w", def.Name, err)
			}
		}
	}
	return nil
}

// ForLevel returns the skills granted at level, or nil.
func (c *SkillCatalog) ForLevel(level int) []SkillDef {
	return c.levels[level]
}

// Levels returns the levels that grant skills in ascending order.
func (c *SkillCatalog) Levels() []int {
	levels := make([]int, 0, len(c.levels))
	for l := range c.levels {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}
