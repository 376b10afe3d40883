package kick_test

import (
	"testing"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/kick"
	"github.com/plus3/stackfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidView reports every on-board cell as locked.
type solidView struct{}

func (solidView) IsOccupied(col, row int) bool { return true }

func blocked(cells ...piece.Cell) *board.Board {
	b := board.New()
	b.Place(piece.Z, cells)
	return b
}

func TestTests(t *testing.T) {
	t.Run("I spawn to right", func(t *testing.T) {
		assert.Equal(t,
			[]kick.Offset{{0, 0}, {-2, 0}, {+1, 0}, {+1, +2}, {-2, -1}},
			kick.Tests(piece.Spawn, piece.Right, piece.I))
	})

	t.Run("T spawn to right", func(t *testing.T) {
		assert.Equal(t,
			[]kick.Offset{{0, 0}, {-1, 0}, {-1, +1}, {0, -2}, {-1, -2}},
			kick.Tests(piece.Spawn, piece.Right, piece.T))
	})

	t.Run("I spawn to left", func(t *testing.T) {
		assert.Equal(t,
			[]kick.Offset{{0, 0}, {+2, 0}, {-1, 0}, {-1, +2}, {+2, -1}},
			kick.Tests(piece.Spawn, piece.Left, piece.I))
	})

	t.Run("JLSTZ share a table", func(t *testing.T) {
		for _, k := range []piece.Kind{piece.J, piece.L, piece.S, piece.Z} {
			assert.Equal(t, kick.Tests(piece.Left, piece.Spawn, piece.T), kick.Tests(piece.Left, piece.Spawn, k))
		}
	})

	t.Run("every adjacent transition has five candidates", func(t *testing.T) {
		for _, k := range []piece.Kind{piece.I, piece.T} {
			for _, from := range []piece.Rotation{piece.Spawn, piece.Right, piece.Flipped, piece.Left} {
				for _, d := range []kick.Direction{kick.Clockwise, kick.CounterClockwise} {
					tests := kick.Tests(from, d.Target(from), k)
					require.Len(t, tests, 5, "%v %v->%v", k, from, d.Target(from))
					assert.Equal(t, kick.Offset{}, tests[0])
				}
			}
		}
	})

	t.Run("JLSTZ reverse transitions negate each other", func(t *testing.T) {
		for _, k := range []piece.Kind{piece.T} {
			for _, from := range []piece.Rotation{piece.Spawn, piece.Right, piece.Flipped, piece.Left} {
				to := from.CW()
				fwd := kick.Tests(from, to, k)
				back := kick.Tests(to, from, k)
				for i := range fwd {
					assert.Equal(t, kick.Offset{Col: -fwd[i].Col, Up: -fwd[i].Up}, back[i], "%v %v<->%v #%d", k, from, to, i)
				}
			}
		}
	})

	t.Run("O and non-adjacent pairs", func(t *testing.T) {
		assert.Equal(t, []kick.Offset{{0, 0}}, kick.Tests(piece.Spawn, piece.Right, piece.O))
		assert.Nil(t, kick.Tests(piece.Spawn, piece.Flipped, piece.T))
	})
}

func TestResolve(t *testing.T) {
	t.Run("open space uses the first candidate", func(t *testing.T) {
		res, ok := kick.Resolve(board.New(), piece.T, piece.Spawn, kick.Clockwise, 3, 5)
		require.True(t, ok)
		assert.Equal(t, kick.Result{Rotation: piece.Right, Col: 3, Row: 5, Test: 0}, res)
	})

	t.Run("I spawn to right falls through to the third candidate", func(t *testing.T) {
		// (5,8) blocks the unkicked vertical I, (3,7) blocks the (-2,0) kick.
		b := blocked(piece.Cell{Col: 5, Row: 8}, piece.Cell{Col: 3, Row: 7})
		require.False(t, board.Collides(b, piece.I, piece.Spawn, 3, 5))

		res, ok := kick.Resolve(b, piece.I, piece.Spawn, kick.Clockwise, 3, 5)
		require.True(t, ok)
		assert.Equal(t, kick.Result{Rotation: piece.Right, Col: 4, Row: 5, Test: 2}, res)
	})

	t.Run("T spawn to right second candidate", func(t *testing.T) {
		b := blocked(piece.Cell{Col: 4, Row: 8})
		res, ok := kick.Resolve(b, piece.T, piece.Spawn, kick.Clockwise, 3, 5)
		require.True(t, ok)
		assert.Equal(t, kick.Result{Rotation: piece.Right, Col: 2, Row: 5, Test: 1}, res)
	})

	t.Run("T spawn to right last candidate moves down two rows", func(t *testing.T) {
		b := blocked(piece.Cell{Col: 4, Row: 8}, piece.Cell{Col: 3, Row: 6})
		require.False(t, board.Collides(b, piece.T, piece.Spawn, 3, 5))

		res, ok := kick.Resolve(b, piece.T, piece.Spawn, kick.Clockwise, 3, 5)
		require.True(t, ok)
		assert.Equal(t, kick.Result{Rotation: piece.Right, Col: 2, Row: 7, Test: 4}, res)
	})

	t.Run("no candidate fits", func(t *testing.T) {
		for _, k := range []piece.Kind{piece.I, piece.J, piece.L, piece.S, piece.T, piece.Z} {
			_, ok := kick.Resolve(solidView{}, k, piece.Spawn, kick.Clockwise, 3, 8)
			assert.False(t, ok, "%v", k)
			_, ok = kick.Resolve(solidView{}, k, piece.Spawn, kick.CounterClockwise, 3, 8)
			assert.False(t, ok, "%v", k)
		}
	})

	t.Run("O always succeeds in place", func(t *testing.T) {
		res, ok := kick.Resolve(solidView{}, piece.O, piece.Left, kick.Clockwise, 3, 8)
		require.True(t, ok)
		assert.Equal(t, kick.Result{Rotation: piece.Spawn, Col: 3, Row: 8}, res)
	})

	t.Run("kick off the left wall", func(t *testing.T) {
		// Vertical I hugging the left wall: its left state sits in local column 1.
		require.False(t, board.Collides(board.New(), piece.I, piece.Left, -1, 5))
		res, ok := kick.Resolve(board.New(), piece.I, piece.Left, kick.Clockwise, -1, 5)
		require.True(t, ok)
		// L->0 for I: (0,0) and (-2,0) leave cells left of the wall, (+1,0) fits.
		assert.Equal(t, kick.Result{Rotation: piece.Spawn, Col: 0, Row: 5, Test: 2}, res)
	})
}

func TestDirection(t *testing.T) {
	assert.Equal(t, piece.Right, kick.Clockwise.Target(piece.Spawn))
	assert.Equal(t, piece.Left, kick.CounterClockwise.Target(piece.Spawn))
	assert.Equal(t, "cw", kick.Clockwise.String())
	assert.Equal(t, "ccw", kick.CounterClockwise.String())
}
