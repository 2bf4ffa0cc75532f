// Package countdown keeps a ticking game timer honest against wall
// clock time. The timer counts down locally once per second and
// periodically re-derives the remaining time from the session's start
// time, so pauses and clock drift cannot stretch a game beyond its
// play time.
package countdown

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// ReconcileInterval is how many ticks pass between wall clock
	// reconciliations.
	ReconcileInterval = 60

	// DriftTolerance is the largest local/wall disagreement, in
	// seconds, tolerated before the local count snaps to the wall
	// clock value.
	DriftTolerance = 2
)

// Remaining derives the seconds left on a timer from its start time.
// It never goes below zero and never exceeds the total.
func Remaining(now, startTime time.Time, totalSeconds int) int {
	elapsed := int(now.Sub(startTime) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := totalSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Countdown is a once-per-second countdown anchored to a session's
// start time. It is not safe for concurrent use.
type Countdown struct {
	clock     clockwork.Clock
	startTime time.Time
	total     int
	remaining int
	ticks     int
}

// New creates a countdown for a session. The initial remaining time is
// derived from the start time, so a countdown created mid-game starts
// at the right value.
func New(clock clockwork.Clock, startTime time.Time, totalSeconds int) *Countdown {
	return &Countdown{
		clock:     clock,
		startTime: startTime,
		total:     totalSeconds,
		remaining: Remaining(clock.Now(), startTime, totalSeconds),
	}
}

// Resume rebuilds a countdown for a stored session. If the stored
// theme does not match the session's theme the stored state is stale
// and the countdown is discarded.
func Resume(clock clockwork.Clock, startTime time.Time, totalSeconds int, sessionThemeID, storedThemeID string) (*Countdown, bool) {
	if sessionThemeID != storedThemeID {
		return nil, false
	}
	return New(clock, startTime, totalSeconds), true
}

// Remaining returns the seconds left
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Expired reports whether the countdown has reached zero
func (c *Countdown) Expired() bool {
	return c.remaining <= 0
}

// Tick advances the countdown by one second and returns the remaining
// time. Every ReconcileInterval ticks the local count is checked
// against the wall clock and snapped to it when the drift exceeds
// DriftTolerance.
func (c *Countdown) Tick() int {
	if c.remaining > 0 {
		c.remaining--
	}
	c.ticks++

	if c.ticks%ReconcileInterval == 0 {
		wall := Remaining(c.clock.Now(), c.startTime, c.total)
		drift := c.remaining - wall
		if drift < -DriftTolerance || drift > DriftTolerance {
			c.remaining = wall
		}
	}
	return c.remaining
}

// Run ticks the countdown once per second, calling onTick after each
// tick, until it expires or the context is canceled. Expiry only stops
// the ticking; ending the session is the caller's decision.
func (c *Countdown) Run(ctx context.Context, onTick func(remaining int)) {
	ticker := c.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			remaining := c.Tick()
			if onTick != nil {
				onTick(remaining)
			}
			if c.Expired() {
				return
			}
		}
	}
}
