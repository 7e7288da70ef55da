package testutil

import "time"

// DeterministicClock hands out fixed, evenly spaced instants for tests.
//
// The runner measures elapsed wall-clock time per part; substituting
// this clock makes the reported durations reproducible, which keeps
// golden output files byte-identical across runs.
type DeterministicClock struct {
	now  time.Time
	step time.Duration
}

// NewDeterministicClock creates a clock starting at start and advancing
// by step on every call to Now.
func NewDeterministicClock(start time.Time, step time.Duration) *DeterministicClock {
	return &DeterministicClock{now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *DeterministicClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
