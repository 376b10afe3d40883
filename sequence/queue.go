package sequence

import "github.com/plus3/stackfall/piece"

// QueueLength is the number of upcoming pieces shown to the player.
const QueueLength = 3

// Queue is the next-piece preview. After Fill it always holds exactly QueueLength kinds.
type Queue struct {
	seq   *Sequencer
	kinds []piece.Kind
}

// NewQueue creates an empty queue that refills from seq.
func NewQueue(seq *Sequencer) *Queue {
	return &Queue{
		seq:   seq,
		kinds: make([]piece.Kind, 0, QueueLength),
	}
}

// Fill tops the queue up to QueueLength.
func (q *Queue) Fill() {
	for len(q.kinds) < QueueLength {
		q.kinds = append(q.kinds, q.seq.Draw())
	}
}

// Pop removes the head and appends one fresh draw to the tail.
func (q *Queue) Pop() piece.Kind {
	q.Fill()
	head := q.kinds[0]
	copy(q.kinds, q.kinds[1:])
	q.kinds[len(q.kinds)-1] = q.seq.Draw()
	return head
}

// Peek returns a copy of the queue, head first.
func (q *Queue) Peek() []piece.Kind {
	out := make([]piece.Kind, len(q.kinds))
	copy(out, q.kinds)
	return out
}

// Len returns the number of queued kinds.
func (q *Queue) Len() int {
	return len(q.kinds)
}
