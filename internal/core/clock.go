package core

import "time"

// DayClock paces simulation days against wall-clock time so a GUI can
// redraw at full frame rate while the model advances at a slower cadence.
type DayClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewDayClock constructs a DayClock advancing at the given days per second.
func NewDayClock(daysPerSecond float64) *DayClock {
	c := &DayClock{}
	c.SetRate(daysPerSecond)
	c.accumulator = c.step
	return c
}

// SetRate changes the pacing. It is safe to call from the main loop.
func (c *DayClock) SetRate(daysPerSecond float64) {
	if daysPerSecond <= 0 {
		daysPerSecond = 4
	}
	c.step = time.Duration(float64(time.Second) / daysPerSecond)
}

// Tick reports whether the simulation should advance by one day.
func (c *DayClock) Tick() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	c.accumulator += delta
	if c.accumulator >= c.step {
		c.accumulator -= c.step
		return true
	}
	return false
}
