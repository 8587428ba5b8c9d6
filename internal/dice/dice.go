// Package dice provides the randomness abstraction used by encounters, rewards,
// enemy generation and combat.
package dice

import (
	"fmt"
	"math/rand"
	"time"
)

// Source is the randomness provider for every probabilistic game rule.
//
// *rand.Rand satisfies Source, which keeps seeded sessions reproducible.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a Source seeded with seed, or with the current time when seed is 0.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Range is an inclusive integer interval used for damage, HP and reward rolls.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Validate reports whether the range is a non-empty ascending pair of non-negative integers.
func (r Range) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("range min must be >= 0, got %d", r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("range min (%d) must be <= max (%d)", r.Min, r.Max)
	}
	return nil
}

// Roll draws a value uniformly from the range.
//
// Precondition: r passed Validate.
// Postcondition: r.Min <= result <= r.Max.
func (r Range) Roll(src Source) int {
	spread := r.Max - r.Min
	if spread <= 0 {
		return r.Min
	}
	return r.Min + src.Intn(spread+1)
}

// String renders the range as "min-max".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Chance performs a single Bernoulli trial that succeeds with probability rate.
func Chance(src Source, rate float64) bool {
	return src.Float64() < rate
}

// Pick returns a uniformly chosen element of items.
//
// Precondition: len(items) > 0.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
