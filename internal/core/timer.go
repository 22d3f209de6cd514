package core

import "time"

// Gate lets an update through at most once per interval. Unlike a free-running
// ticker it is driven by the caller's clock, so the same instant can be
// presented any number of times without side effects.
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate constructs a Gate with the given interval. Non-positive intervals
// open the gate on every call.
func NewGate(interval time.Duration) *Gate {
	g := &Gate{}
	g.SetInterval(interval)
	return g
}

// SetInterval changes the minimum spacing between updates. It is safe to call
// from the main loop and does not reset the last update.
func (g *Gate) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	g.interval = interval
}

// Interval returns the configured spacing.
func (g *Gate) Interval() time.Duration { return g.interval }

// Last returns the instant of the most recent update, zero if none.
func (g *Gate) Last() time.Time { return g.last }

// Ready reports whether an update is due at now. A gate that never fired is
// always ready.
func (g *Gate) Ready(now time.Time) bool {
	if g.last.IsZero() {
		return true
	}
	return now.Sub(g.last) >= g.interval
}

// Mark records that an update happened at now.
func (g *Gate) Mark(now time.Time) { g.last = now }

// Elapsed returns the time since the last update, zero if none.
func (g *Gate) Elapsed(now time.Time) time.Duration {
	if g.last.IsZero() {
		return 0
	}
	if d := now.Sub(g.last); d > 0 {
		return d
	}
	return 0
}

// Progress returns Elapsed/Interval clamped to [0, 1]. A gate with no interval
// or no previous update reports 1.
func (g *Gate) Progress(now time.Time) float64 {
	if g.interval <= 0 || g.last.IsZero() {
		return 1
	}
	p := float64(g.Elapsed(now)) / float64(g.interval)
	if p > 1 {
		return 1
	}
	return p
}
