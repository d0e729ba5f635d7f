// Package clock provides time utilities for the application
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality. Battle timestamps are unix seconds taken from it.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock that only moves when told to. Replays and tests use it so
// wildcard deadlines can be crossed without waiting.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the current fixed time
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t
func (c *Fixed) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
