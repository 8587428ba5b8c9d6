// Package pacing provides the tick clock behind rests and battle delays.
package pacing

import "time"

// Clock blocks for whole ticks. Waits are not cancellable: a rest that has
// started always runs to completion before the game advances.
type Clock interface {
	Wait(ticks int)
}

// TickClock sleeps for Tick per tick.
type TickClock struct {
	Tick time.Duration
}

// NewTickClock returns a Clock that sleeps tick per tick.
//
// Precondition: tick >= 0.
func NewTickClock(tick time.Duration) *TickClock {
	return &TickClock{Tick: tick}
}

// Wait sleeps ticks*Tick. Non-positive tick counts return immediately.
func (c *TickClock) Wait(ticks int) {
	if ticks <= 0 || c.Tick <= 0 {
		return
	}
	time.Sleep(time.Duration(ticks) * c.Tick)
}

// Counter is a Clock that never sleeps and records how many ticks were requested.
type Counter struct {
	Ticks int
	Calls int
}

// Wait records the request.
func (c *Counter) Wait(ticks int) {
	c.Calls++
	if ticks > 0 {
		c.Ticks += ticks
	}
}

var (
	_ Clock = (*TickClock)(nil)
	_ Clock = (*Counter)(nil)
)
