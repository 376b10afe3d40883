package session

import (
	"time"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/piece"
)

// Snapshot is everything a front end needs to draw one frame. It shares no memory with
// the session.
type Snapshot struct {
	State State
	Round int
	// Timer is the countdown or restart delay remaining, in seconds.
	Timer float64

	// Grid holds the locked cells with the active piece drawn over them while a round is
	// live.
	Grid     board.Grid
	Active   Active
	GhostRow int

	Next    []piece.Kind
	Held    piece.Kind
	HasHeld bool
	CanHold bool

	Score int
	Lines int
	Level int

	Frame       int64
	PlayTime    time.Duration
	Droughts    [piece.Count]int
	MaxDrought  int
	AntiDrought bool
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:       s.state,
		Round:       s.round,
		Timer:       s.timer,
		Active:      s.active,
		GhostRow:    s.GhostRow(),
		Next:        s.queue.Peek(),
		CanHold:     s.hold.CanHold(),
		Score:       s.score,
		Lines:       s.lines,
		Level:       s.Level(),
		Frame:       s.clock.Frame(),
		PlayTime:    s.playTime(),
		Droughts:    s.seq.Droughts(),
		MaxDrought:  s.seq.MaxDrought(),
		AntiDrought: s.AntiDrought(),
	}
	snap.Held, snap.HasHeld = s.hold.Held()

	switch s.state {
	case AwaitingNameEntry, GameOver:
		snap.Grid = s.board.Grid()
	default:
		cells := s.active.Cells()
		snap.Grid = s.board.SnapshotWithOverlay(cells[:], s.active.Kind)
	}
	return snap
}

// Result summarizes a round for a score recorder.
type Result struct {
	Round       int
	Duration    time.Duration
	Score       int
	Lines       int
	Level       int
	Pieces      int
	Drought     int
	AntiDrought bool
	Initials    string
}

// Result returns the summary of the current round. It is final once the state reaches
// AwaitingNameEntry or GameOver.
func (s *Session) Result() Result {
	return Result{
		Round:       s.round,
		Duration:    s.playTime(),
		Score:       s.score,
		Lines:       s.lines,
		Level:       s.Level(),
		Pieces:      s.pieces,
		Drought:     s.seq.MaxDrought(),
		AntiDrought: s.AntiDrought(),
		Initials:    s.initials,
	}
}

func (s *Session) playTime() time.Duration {
	return time.Duration(s.clock.Elapsed() * float64(time.Second))
}
