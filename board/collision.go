package board

import "github.com/plus3/stackfall/piece"

// Collides reports whether kind k at rotation r, anchored with its local grid origin at
// (anchorCol, anchorRow), overlaps a wall, the floor or a locked cell. Cells above the
// board (negative rows) are allowed so pieces can spawn partly out of view.
func Collides(v View, k piece.Kind, r piece.Rotation, anchorCol, anchorRow int) bool {
	for _, c := range piece.ShapeOf(k, r).Cells {
		col := anchorCol + c.Col
		row := anchorRow + c.Row
		if col < 0 || col >= Width || row >= Height {
			return true
		}
		if row >= 0 && v.IsOccupied(col, row) {
			return true
		}
	}
	return false
}

// DropRow returns the lowest anchor row reachable from anchorRow by straight descent.
// The starting position is assumed to be free.
func DropRow(v View, k piece.Kind, r piece.Rotation, anchorCol, anchorRow int) int {
	row := anchorRow
	for !Collides(v, k, r, anchorCol, row+1) {
		row++
	}
	return row
}
