// Package input turns per-frame key states into game commands. A Repeater gives held keys
// an immediate first action followed by auto-repeat after a delay; an Edge fires once per
// press.
package input

import "github.com/kamstrup/intmap"

// Action is a logical game command, independent of the physical key bound to it.
type Action int

const (
	Left Action = iota
	Right
	SoftDrop
	RotateCW
	RotateCCW
	HardDrop
	Hold
	Pause
	SkipLevel
	actionCount
)

var actionNames = [...]string{
	Left:      "left",
	Right:     "right",
	SoftDrop:  "soft-drop",
	RotateCW:  "rotate-cw",
	RotateCCW: "rotate-ccw",
	HardDrop:  "hard-drop",
	Hold:      "hold",
	Pause:     "pause",
	SkipLevel: "skip-level",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// RepeatState is where an action sits in the repeat cycle.
type RepeatState int

const (
	Idle RepeatState = iota
	FirstPress
	Repeating
)

// Default repeat timing in render frames.
const (
	DefaultDelay = 4
	DefaultRate  = 4
)

// Repeater tracks how long each action has been held, in rendered frames. An action fires
// on the frame its key goes down, then every Rate frames once the hold count passes
// Delay*Rate.
type Repeater struct {
	Delay int
	Rate  int

	held *intmap.Map[Action, int]
}

// NewRepeater creates a Repeater with the given timing. Non-positive values fall back to
// the defaults.
func NewRepeater(delay, rate int) *Repeater {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Repeater{
		Delay: delay,
		Rate:  rate,
		held:  intmap.New[Action, int](int(actionCount)),
	}
}

// Update records one frame of action a and reports whether it fires this frame.
func (r *Repeater) Update(a Action, pressed bool) bool {
	if !pressed {
		r.held.Del(a)
		return false
	}
	count, ok := r.held.Get(a)
	if ok {
		count++
	}
	r.held.Put(a, count)

	if count == 0 {
		return true
	}
	return count/r.Rate > r.Delay && count%r.Rate == 0
}

// State reports where a sits in the repeat cycle.
func (r *Repeater) State(a Action) RepeatState {
	count, ok := r.held.Get(a)
	switch {
	case !ok:
		return Idle
	case count/r.Rate > r.Delay:
		return Repeating
	default:
		return FirstPress
	}
}

// Reset releases every action.
func (r *Repeater) Reset() {
	r.held.Clear()
}

// Edge fires once when an action goes from released to pressed.
type Edge struct {
	down *intmap.Set[Action]
}

// NewEdge creates an Edge with every action released.
func NewEdge() *Edge {
	return &Edge{down: intmap.NewSet[Action](int(actionCount))}
}

// Rising records the level of a and reports whether it just went down.
func (e *Edge) Rising(a Action, pressed bool) bool {
	if !pressed {
		e.down.Del(a)
		return false
	}
	return e.down.Add(a)
}

// Reset releases every action.
func (e *Edge) Reset() {
	e.down.Clear()
}
