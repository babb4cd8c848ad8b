// Package testutil provides deterministic helpers for harness tests.
package testutil

import (
	"sync"
	"time"
)

// DeterministicClock is a thread-safe logical clock for tests. Each call
// to Now advances by one second from a fixed epoch, so recorded outcome
// timestamps are reproducible across runs.
type DeterministicClock struct {
	mu    sync.Mutex
	seq   int64
	epoch time.Time
}

// NewDeterministicClock creates a clock starting at the Unix epoch.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{epoch: time.Unix(0, 0).UTC()}
}

// Now returns the next tick: epoch + seq seconds.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.epoch.Add(time.Duration(c.seq) * time.Second)
	c.seq++
	return t
}

// Reset rewinds the clock so a scenario can be replayed identically.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
