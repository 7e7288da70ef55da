package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicClockAdvancesByStep(t *testing.T) {
	start := time.Unix(0, 0)
	clock := NewDeterministicClock(start, 1500*time.Millisecond)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(1500*time.Millisecond), clock.Now())
	assert.Equal(t, start.Add(3000*time.Millisecond), clock.Now())
}

func TestDeterministicClockElapsed(t *testing.T) {
	clock := NewDeterministicClock(time.Unix(0, 0), time.Second)

	t0 := clock.Now()
	t1 := clock.Now()
	assert.Equal(t, time.Second, t1.Sub(t0))
}
