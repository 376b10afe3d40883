package frame

import "time"

// Timer measures wall time between frames.
type Timer struct {
	last     time.Time
	maxDelta time.Duration
	now      func() time.Time
}

// NewTimer starts a timer. Deltas longer than maxDelta are clamped so a stalled window
// does not dump seconds of gravity into one frame; zero disables the clamp.
func NewTimer(maxDelta time.Duration) *Timer {
	return newTimerAt(time.Now, maxDelta)
}

func newTimerAt(now func() time.Time, maxDelta time.Duration) *Timer {
	return &Timer{last: now(), maxDelta: maxDelta, now: now}
}

// Delta returns the seconds since the previous call, or since the timer started.
func (t *Timer) Delta() float64 {
	now := t.now()
	d := now.Sub(t.last)
	t.last = now
	if d < 0 {
		d = 0
	}
	if t.maxDelta > 0 && d > t.maxDelta {
		d = t.maxDelta
	}
	return d.Seconds()
}
