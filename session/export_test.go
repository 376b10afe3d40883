package session

import "github.com/plus3/stackfall/board"

// SetBoard swaps in a prepared board.
func (s *Session) SetBoard(b *board.Board) {
	s.board = b
}
