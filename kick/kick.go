// Package kick resolves rotations against the board using the SRS wall kick tables.
package kick

import (
	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/piece"
)

// Direction is the sense of a rotation request.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Target returns the rotation reached from r in direction d.
func (d Direction) Target(r piece.Rotation) piece.Rotation {
	if d == CounterClockwise {
		return r.CCW()
	}
	return r.CW()
}

// Offset is one kick candidate as written in the SRS tables: Col grows to the right and
// Up grows upward, so the board-space row change is -Up.
type Offset struct {
	Col, Up int
}

// Rows returns the board-space row translation.
func (o Offset) Rows() int {
	return -o.Up
}

type transition struct {
	from, to piece.Rotation
}

var zeroOnly = []Offset{{0, 0}}

var jlstzTests = map[transition][]Offset{
	{piece.Spawn, piece.Right}:   {{0, 0}, {-1, 0}, {-1, +1}, {0, -2}, {-1, -2}},
	{piece.Right, piece.Spawn}:   {{0, 0}, {+1, 0}, {+1, -1}, {0, +2}, {+1, +2}},
	{piece.Right, piece.Flipped}: {{0, 0}, {+1, 0}, {+1, -1}, {0, +2}, {+1, +2}},
	{piece.Flipped, piece.Right}: {{0, 0}, {-1, 0}, {-1, +1}, {0, -2}, {-1, -2}},
	{piece.Flipped, piece.Left}:  {{0, 0}, {+1, 0}, {+1, +1}, {0, -2}, {+1, -2}},
	{piece.Left, piece.Flipped}:  {{0, 0}, {-1, 0}, {-1, -1}, {0, +2}, {-1, +2}},
	{piece.Left, piece.Spawn}:    {{0, 0}, {-1, 0}, {-1, -1}, {0, +2}, {-1, +2}},
	{piece.Spawn, piece.Left}:    {{0, 0}, {+1, 0}, {+1, +1}, {0, -2}, {+1, -2}},
}

var iTests = map[transition][]Offset{
	{piece.Spawn, piece.Right}:   {{0, 0}, {-2, 0}, {+1, 0}, {+1, +2}, {-2, -1}},
	{piece.Right, piece.Spawn}:   {{0, 0}, {+2, 0}, {-1, 0}, {+2, +1}, {-1, -2}},
	{piece.Right, piece.Flipped}: {{0, 0}, {-1, 0}, {+2, 0}, {-1, +2}, {+2, -1}},
	{piece.Flipped, piece.Right}: {{0, 0}, {-2, 0}, {+1, 0}, {-2, +1}, {+1, -1}},
	{piece.Flipped, piece.Left}:  {{0, 0}, {+2, 0}, {-1, 0}, {+2, +1}, {-1, -1}},
	{piece.Left, piece.Flipped}:  {{0, 0}, {+1, 0}, {-2, 0}, {+1, +2}, {-2, -1}},
	{piece.Left, piece.Spawn}:    {{0, 0}, {-2, 0}, {+1, 0}, {-2, +1}, {+1, -2}},
	{piece.Spawn, piece.Left}:    {{0, 0}, {+2, 0}, {-1, 0}, {-1, +2}, {+2, -1}},
}

// Tests returns the ordered kick candidates for rotating kind k from one state to an
// adjacent one. O always gets the single zero offset. A non-adjacent pair has no table
// and returns nil.
func Tests(from, to piece.Rotation, k piece.Kind) []Offset {
	if k == piece.O {
		return zeroOnly
	}
	table := jlstzTests
	if k == piece.I {
		table = iTests
	}
	return table[transition{from, to}]
}

// Result is an accepted rotation.
type Result struct {
	Rotation piece.Rotation
	Col, Row int
	// Test is the index of the candidate that fit.
	Test int
}

// Resolve rotates kind k from rotation `from` in direction d with its anchor at
// (col,row). Candidates are tried in table order at the new rotation and the first that
// does not collide wins. When none fit, ok is false and the caller keeps its state.
func Resolve(v board.View, k piece.Kind, from piece.Rotation, d Direction, col, row int) (res Result, ok bool) {
	to := d.Target(from)
	if k == piece.O {
		// Every O state has the same cells.
		return Result{Rotation: to, Col: col, Row: row}, true
	}
	for i, off := range Tests(from, to, k) {
		c, r := col+off.Col, row+off.Rows()
		if board.Collides(v, k, to, c, r) {
			continue
		}
		return Result{Rotation: to, Col: c, Row: r, Test: i}, true
	}
	return Result{}, false
}
