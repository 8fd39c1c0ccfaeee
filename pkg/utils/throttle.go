package utils

import "time"

// Gate lets an action through at most once per interval.
// Calls that arrive too early are dropped, not queued.
type Gate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewGate creates a gate with the given minimum interval between fires
func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval, now: time.Now}
}

// Allow reports whether the action may fire now and records the fire
func (g *Gate) Allow() bool {
	return g.AllowAt(g.now())
}

// AllowAt is Allow for an event that happened at t
func (g *Gate) AllowAt(t time.Time) bool {
	if !g.last.IsZero() && t.Sub(g.last) < g.interval {
		return false
	}
	g.last = t
	return true
}

// Reset forgets the last fire so the next Allow passes
func (g *Gate) Reset() {
	g.last = time.Time{}
}
