package sequence

import "github.com/plus3/stackfall/piece"

// Hold is the single reserve slot. A swap is allowed once per placement.
type Hold struct {
	kind    piece.Kind
	held    bool
	canHold bool
}

// NewHold returns an empty slot that accepts a swap.
func NewHold() *Hold {
	return &Hold{canHold: true}
}

// Swap exchanges active with the slot. With an empty slot the next kind is taken from q;
// otherwise the previously held kind comes back and the queue is untouched. ok is false
// when a swap already happened since the last Rearm.
func (h *Hold) Swap(active piece.Kind, q *Queue) (next piece.Kind, ok bool) {
	if !h.canHold {
		return active, false
	}
	h.canHold = false
	if !h.held {
		h.kind, h.held = active, true
		return q.Pop(), true
	}
	next, h.kind = h.kind, active
	return next, true
}

// Rearm allows the next swap. Called whenever a new piece spawns from a lock.
func (h *Hold) Rearm() {
	h.canHold = true
}

// Held returns the reserved kind, if any.
func (h *Hold) Held() (piece.Kind, bool) {
	return h.kind, h.held
}

// CanHold reports whether a swap is currently allowed.
func (h *Hold) CanHold() bool {
	return h.canHold
}

// Clear empties the slot and re-arms it.
func (h *Hold) Clear() {
	*h = Hold{canHold: true}
}
