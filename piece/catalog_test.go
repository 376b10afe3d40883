package piece_test

import (
	"testing"

	"github.com/plus3/stackfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRotations = []piece.Rotation{piece.Spawn, piece.Right, piece.Flipped, piece.Left}

func TestShapeOf(t *testing.T) {
	t.Run("four distinct cells inside the local grid", func(t *testing.T) {
		for _, k := range piece.Kinds() {
			for _, r := range allRotations {
				shape := piece.ShapeOf(k, r)
				seen := make(map[piece.Cell]bool)
				for _, c := range shape.Cells {
					assert.GreaterOrEqual(t, c.Col, 0, "%v/%v", k, r)
					assert.Less(t, c.Col, piece.GridSize, "%v/%v", k, r)
					assert.GreaterOrEqual(t, c.Row, 0, "%v/%v", k, r)
					assert.Less(t, c.Row, piece.GridSize, "%v/%v", k, r)
					seen[c] = true
				}
				assert.Len(t, seen, 4, "%v/%v has duplicate cells", k, r)
			}
		}
	})

	t.Run("O is identical in every rotation", func(t *testing.T) {
		spawn := piece.ShapeOf(piece.O, piece.Spawn)
		for _, r := range allRotations {
			assert.Equal(t, spawn, piece.ShapeOf(piece.O, r))
		}
	})

	t.Run("I spawn state is the second row", func(t *testing.T) {
		shape := piece.ShapeOf(piece.I, piece.Spawn)
		assert.Equal(t, [4]piece.Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, shape.Cells)
		assert.Equal(t, piece.Bounds{MinCol: 0, MaxCol: 3, MinRow: 1, MaxRow: 1}, shape.Bounds)
	})

	t.Run("T right state", func(t *testing.T) {
		shape := piece.ShapeOf(piece.T, piece.Right)
		assert.ElementsMatch(t, []piece.Cell{{1, 1}, {1, 2}, {2, 2}, {1, 3}}, shape.Cells[:])
		assert.Equal(t, piece.Bounds{MinCol: 1, MaxCol: 2, MinRow: 1, MaxRow: 3}, shape.Bounds)
	})

	t.Run("spawn states stay on the board at row -1", func(t *testing.T) {
		for _, k := range piece.Kinds() {
			b := piece.BoundsOf(k, piece.Spawn)
			assert.GreaterOrEqual(t, b.MinRow-1, 0, "%v spawns above the board", k)
		}
	})

	t.Run("invalid input panics", func(t *testing.T) {
		assert.Panics(t, func() { piece.ShapeOf(piece.Kind(9), piece.Spawn) })
		assert.Panics(t, func() { piece.ShapeOf(piece.T, piece.Rotation(4)) })
	})
}

func TestBoundsMatchCells(t *testing.T) {
	for _, k := range piece.Kinds() {
		for _, r := range allRotations {
			shape := piece.ShapeOf(k, r)
			b := piece.BoundsOf(k, r)
			for _, c := range shape.Cells {
				require.True(t, c.Col >= b.MinCol && c.Col <= b.MaxCol)
				require.True(t, c.Row >= b.MinRow && c.Row <= b.MaxRow)
			}
		}
	}
}

func TestShapeAt(t *testing.T) {
	cells := piece.ShapeOf(piece.O, piece.Spawn).At(3, -1)
	assert.Equal(t, [4]piece.Cell{{4, 0}, {5, 0}, {4, 1}, {5, 1}}, cells)
}

func TestRotationCycle(t *testing.T) {
	assert.Equal(t, piece.Right, piece.Spawn.CW())
	assert.Equal(t, piece.Flipped, piece.Right.CW())
	assert.Equal(t, piece.Left, piece.Flipped.CW())
	assert.Equal(t, piece.Spawn, piece.Left.CW())

	for _, r := range allRotations {
		assert.Equal(t, r, r.CW().CCW())
		assert.Equal(t, r, r.CW().CW().CW().CW())
	}
	assert.Equal(t, "L", piece.Spawn.CCW().String())
}

func TestKindNames(t *testing.T) {
	for _, k := range piece.Kinds() {
		parsed, ok := piece.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := piece.ParseKind("X")
	assert.False(t, ok)
	assert.Equal(t, "Kind(12)", piece.Kind(12).String())
}
