package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var anchor = time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)

func TestRemaining(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		total    int
		expected int
	}{
		{
			name:     "at start",
			now:      anchor,
			total:    600,
			expected: 600,
		},
		{
			name:     "mid game",
			now:      anchor.Add(4 * time.Minute),
			total:    600,
			expected: 360,
		},
		{
			name:     "exactly expired",
			now:      anchor.Add(10 * time.Minute),
			total:    600,
			expected: 0,
		},
		{
			name:     "past expiry clamps to zero",
			now:      anchor.Add(time.Hour),
			total:    600,
			expected: 0,
		},
		{
			name:     "before start clamps to total",
			now:      anchor.Add(-time.Minute),
			total:    600,
			expected: 600,
		},
		{
			name:     "sub-second elapsed truncates",
			now:      anchor.Add(1500 * time.Millisecond),
			total:    600,
			expected: 599,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.now, anchor, tt.total); got != tt.expected {
				t.Errorf("Remaining() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestNewDerivesFromStartTime(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor.Add(2 * time.Minute))

	c := New(clock, anchor, 600)
	if got := c.Remaining(); got != 480 {
		t.Errorf("Remaining() = %d, want 480", got)
	}
}

func TestTickCountsDown(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor)
	c := New(clock, anchor, 600)

	clock.Advance(time.Second)
	if got := c.Tick(); got != 599 {
		t.Errorf("Tick() = %d, want 599", got)
	}
	clock.Advance(time.Second)
	if got := c.Tick(); got != 598 {
		t.Errorf("Tick() = %d, want 598", got)
	}
}

func TestTickReconcilesDrift(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor)
	c := New(clock, anchor, 600)

	// Sixty local ticks with a frozen wall clock leave the local
	// count sixty seconds ahead; the reconcile pass snaps it back
	var got int
	for i := 0; i < ReconcileInterval; i++ {
		got = c.Tick()
	}
	if got != 600 {
		t.Errorf("Remaining after reconcile = %d, want 600", got)
	}
}

func TestTickToleratesSmallDrift(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor)
	c := New(clock, anchor, 600)

	// Wall clock runs exactly one second per tick except the last two
	// ticks, leaving the local count two seconds ahead: within
	// tolerance, no snap
	for i := 0; i < ReconcileInterval; i++ {
		if i < ReconcileInterval-2 {
			clock.Advance(time.Second)
		}
		c.Tick()
	}
	if got := c.Remaining(); got != 600-ReconcileInterval {
		t.Errorf("Remaining = %d, want %d", got, 600-ReconcileInterval)
	}
}

func TestTickStopsAtZero(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor)
	c := New(clock, anchor, 2)

	c.Tick()
	c.Tick()
	if got := c.Tick(); got != 0 {
		t.Errorf("Tick() past zero = %d, want 0", got)
	}
	if !c.Expired() {
		t.Error("Expired() = false at zero")
	}
}

func TestResume(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor.Add(5 * time.Minute))

	c, ok := Resume(clock, anchor, 600, "theme-1", "theme-1")
	if !ok {
		t.Fatal("Resume() with matching theme rejected")
	}
	if got := c.Remaining(); got != 300 {
		t.Errorf("Remaining() = %d, want 300", got)
	}

	// Stored state from a different theme is stale
	if _, ok := Resume(clock, anchor, 600, "theme-1", "theme-2"); ok {
		t.Error("Resume() with mismatched theme accepted")
	}
}

func TestRunStopsAtExpiry(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor)
	c := New(clock, anchor, 2)

	ticks := make(chan int, 4)
	done := make(chan struct{})
	go func() {
		c.Run(context.Background(), func(remaining int) { ticks <- remaining })
		close(done)
	}()

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	if got := <-ticks; got != 1 {
		t.Errorf("first tick = %d, want 1", got)
	}
	clock.Advance(time.Second)
	if got := <-ticks; got != 0 {
		t.Errorf("second tick = %d, want 0", got)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after expiry")
	}
}

func TestRunHonorsContext(t *testing.T) {
	clock := clockwork.NewFakeClockAt(anchor)
	c := New(clock, anchor, 600)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, nil)
		close(done)
	}()

	clock.BlockUntil(1)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
