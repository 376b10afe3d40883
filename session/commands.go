package session

import (
	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/gravity"
	"github.com/plus3/stackfall/kick"
	"github.com/plus3/stackfall/piece"
)

func (s *Session) collides(k piece.Kind, r piece.Rotation, col, row int) bool {
	return board.Collides(s.board, k, r, col, row)
}

// MoveHorizontal shifts the active piece one column left (-1) or right (+1). Blocked
// moves and any other direction are ignored.
func (s *Session) MoveHorizontal(dir int) {
	if s.state != Playing || (dir != -1 && dir != 1) {
		return
	}
	a := s.active
	if s.collides(a.Kind, a.Rotation, a.Col+dir, a.Row) {
		return
	}
	s.active.Col += dir
}

// Rotate turns the active piece, applying the first wall kick that fits. When no kick
// fits nothing changes.
func (s *Session) Rotate(d kick.Direction) {
	if s.state != Playing {
		return
	}
	a := s.active
	res, ok := kick.Resolve(s.board, a.Kind, a.Rotation, d, a.Col, a.Row)
	if !ok {
		return
	}
	s.active.Rotation = res.Rotation
	s.active.Col, s.active.Row = res.Col, res.Row
}

// SoftDrop moves the active piece down one row, locking it when it cannot move.
func (s *Session) SoftDrop() {
	if s.state != Playing {
		return
	}
	s.step()
	s.clock.Resync(s.cadence())
}

// HardDrop drops the active piece as far as it goes and locks it.
func (s *Session) HardDrop() {
	if s.state != Playing {
		return
	}
	a := s.active
	s.active.Row = board.DropRow(s.board, a.Kind, a.Rotation, a.Col, a.Row)
	s.lock()
	s.clock.Resync(s.cadence())
}

// Hold moves the active piece into the hold slot, once per placement.
func (s *Session) Hold() {
	if s.state != Playing {
		return
	}
	next, ok := s.hold.Swap(s.active.Kind, s.queue)
	if !ok {
		return
	}
	s.spawn(next)
}

// GhostRow returns the row the active piece would land on with a hard drop.
func (s *Session) GhostRow() int {
	a := s.active
	if s.collides(a.Kind, a.Rotation, a.Col, a.Row) {
		return a.Row
	}
	return board.DropRow(s.board, a.Kind, a.Rotation, a.Col, a.Row)
}

// AddLines credits n cleared lines without touching the board. It exists for level
// testing tools and has no effect outside Playing.
func (s *Session) AddLines(n int) {
	if s.state != Playing || n <= 0 {
		return
	}
	s.lines += n
}

func (s *Session) cadence() int {
	return gravity.Cadence(s.Level())
}

// step is one row of descent, shared by gravity and soft drop.
func (s *Session) step() {
	a := s.active
	if !s.collides(a.Kind, a.Rotation, a.Col, a.Row+1) {
		s.active.Row++
		return
	}
	s.lock()
}

// lock writes the active piece into the board, clears rows it completed, scores them and
// spawns the next piece.
func (s *Session) lock() {
	a := s.active
	shape := piece.ShapeOf(a.Kind, a.Rotation)
	cells := shape.At(a.Col, a.Row)

	visible := cells[:0:0]
	for _, c := range cells {
		if c.Row >= 0 {
			visible = append(visible, c)
		}
	}
	s.board.Place(a.Kind, visible)
	s.pieces++
	if len(visible) < len(cells) {
		// Locked partly above the board.
		s.topOut()
		return
	}

	cleared := s.board.ClearFullRowsInRange(a.Row+shape.Bounds.MinRow, a.Row+shape.Bounds.MaxRow)
	s.score += Points(cleared, s.Level())
	s.lines += cleared

	s.hold.Rearm()
	s.spawn(s.queue.Pop())
}

// spawn places kind k at the spawn anchor. A blocked spawn ends the round.
func (s *Session) spawn(k piece.Kind) {
	s.active = Active{Kind: k, Rotation: piece.Spawn, Col: SpawnCol, Row: SpawnRow}
	if s.collides(k, piece.Spawn, SpawnCol, SpawnRow) {
		s.topOut()
	}
}
