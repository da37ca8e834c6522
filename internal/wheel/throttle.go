package wheel

import (
	"sync"
	"time"
)

// FrameInterval is the minimum spacing between marker redraws (~60 fps).
const FrameInterval = 16 * time.Millisecond

// Throttle rate-limits redraws while the pointer is being dragged.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottle creates a throttle allowing at most one event per interval.
// A nil clock uses time.Now.
func NewThrottle(interval time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{interval: interval, now: now}
}

// Allow reports whether a redraw may happen now and, if so, records it.
func (t *Throttle) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset forgets the last redraw so the next Allow succeeds.
func (t *Throttle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = time.Time{}
}
