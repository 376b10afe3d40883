// Package gravity converts elapsed wall time into automatic descent ticks. Time is counted
// in pseudo-frames at a fixed 60 per second so the cadence does not depend on how fast the
// host renders.
package gravity

import "math"

// FramesPerSecond is the pseudo-frame rate.
const FramesPerSecond = 60

// frameEpsilon absorbs rounding when many float deltas add up to a whole frame.
const frameEpsilon = 1e-9

// MaxLevel is the first level at the fastest cadence.
const MaxLevel = 29

var cadenceByLevel = [MaxLevel + 1]int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
}

// Cadence returns the pseudo-frames between automatic drops at level.
func Cadence(level int) int {
	level = min(max(level, 0), MaxLevel)
	return cadenceByLevel[level]
}

// Clock tracks the pseudo-frame counter for one round. The zero value starts at frame 0.
type Clock struct {
	elapsed     float64
	offset      int64
	lastTrigger int64
}

// Frame returns the current pseudo-frame: the offset plus whole frames elapsed.
func (c *Clock) Frame() int64 {
	return c.offset + int64(math.Floor(c.elapsed*FramesPerSecond+frameEpsilon))
}

// Elapsed returns the wall time fed to the clock, in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Advance adds dt seconds and reports whether the frame counter crossed a multiple of
// cadence since the last trigger. At most one trigger is reported per call.
func (c *Clock) Advance(dt float64, cadence int) bool {
	if dt > 0 {
		c.elapsed += dt
	}
	cad := int64(max(cadence, 1))
	frame := c.Frame()
	if frame/cad <= c.lastTrigger/cad {
		return false
	}
	c.lastTrigger = frame
	return true
}

// Resync restarts the cadence phase at the current frame. After a manual descent the next
// automatic trigger is a full cadence away instead of possibly on the very next frame.
func (c *Clock) Resync(cadence int) {
	cad := int64(max(cadence, 1))
	frame := c.Frame()
	c.offset -= frame % cad
	c.lastTrigger = c.Frame()
}

// Reset returns the clock to frame 0.
func (c *Clock) Reset() {
	*c = Clock{}
}
