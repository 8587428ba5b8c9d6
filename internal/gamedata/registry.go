package gamedata

import (
	"errors"
	"fmt"
)

// EnemyRegistry holds loaded enemy templates and stat tiers.
type EnemyRegistry struct {
	tiers   map[string]StatTier
	byLevel map[int][]EnemyDef
	boss    EnemyDef
}

// NewEnemyRegistry creates a registry from a parsed enemies file.
func NewEnemyRegistry(file EnemiesFile) *EnemyRegistry {
	return &EnemyRegistry{
		tiers:   file.Tiers,
		byLevel: file.Levels,
		boss:    file.Boss,
	}
}

// LoadEnemyRegistry loads, validates and creates a registry from the embedded enemies.yaml.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	file, err := Load[EnemiesFile]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("no enemies loaded from enemies.yaml")
	}
	r := NewEnemyRegistry(file)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Validate checks every tier is well formed and every template names a known tier.
func (r *EnemyRegistry) Validate() error {
	for name, tier := range r.tiers {
		if err := tier.Validate(); err != nil {
			return fmt.Errorf("enemies: tier %s: %w", name, err)
		}
	}
	check := func(def EnemyDef) error {
		if def.Name == "" {
			return fmt.Errorf("enemies: template %q must have a name", def.ID)
		}
		if _, ok := r.tiers[def.Tier]; !ok {
			return fmt.Errorf("enemies: %s references unknown tier %q", def.Name, def.Tier)
		}
		return nil
	}
	for _, defs := range r.byLevel {
		for _, def := range defs {
			if err := check(def); err != nil {
				return err
			}
		}
	}
	return check(r.boss)
}

// Candidates returns the templates an encounter may spawn for a character level.
// A boss fight always yields the single boss template. Levels without their own
// roster fall back to the highest roster defined below them.
func (r *EnemyRegistry) Candidates(level int, bossFight bool) []*EnemyDef {
	if bossFight {
		return []*EnemyDef{&r.boss}
	}
	for l := level; l > 0; l-- {
		defs := r.byLevel[l]
		if len(defs) == 0 {
			continue
		}
		result := make([]*EnemyDef, len(defs))
		for i := range defs {
			result[i] = &defs[i]
		}
		return result
	}
	return nil
}

// Tier returns the stat tier with the given name.
func (r *EnemyRegistry) Tier(name string) (StatTier, bool) {
	t, ok := r.tiers[name]
	return t, ok
}

// GetByID returns the enemy template with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	if r.boss.ID == id {
		return &r.boss
	}
	for l := range r.byLevel {
		defs := r.byLevel[l]
		for i := range defs {
			if defs[i].ID == id {
				return &defs[i]
			}
		}
	}
	return nil
}

// Count returns the number of enemy templates, boss included.
func (r *EnemyRegistry) Count() int {
	n := 1
	for _, defs := range r.byLevel {
		n += len(defs)
	}
	return n
}
