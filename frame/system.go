// Package frame runs the per-frame pipeline of a front end: an ordered list of systems,
// a shared resource store and a command buffer flushed after every frame.
package frame

// System is one stage of the frame. Systems may keep their own state between frames and
// declare Resource fields to reach shared values.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what every system sees during one pass.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}

// Commands buffers work that must wait until every system has run, such as starting a new
// round from a UI button while the session system is still reading the old one.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run after the last system of this frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs queued functions in order and empties the buffer. Functions queued while
// flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
