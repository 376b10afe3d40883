package frame

import "time"

var NewTimerAt = newTimerAt

// Clamp exposes the configured limit.
func (t *Timer) Clamp() time.Duration {
	return t.maxDelta
}
