package piece

import "fmt"

// GridSize is the edge length of the local grid every shape is drawn in.
const GridSize = 4

// Cell is a (column, row) coordinate. Inside a Shape it is local to the 4x4 grid with the
// origin at the top-left; elsewhere it is a board coordinate.
type Cell struct {
	Col, Row int
}

// Bounds is the tight bounding box of a shape's occupied cells.
type Bounds struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// Shape is the occupied set of one (kind, rotation) pair.
type Shape struct {
	Cells  [4]Cell
	Bounds Bounds
}

// At translates the shape's cells by an anchor, giving board coordinates.
func (s Shape) At(anchorCol, anchorRow int) [4]Cell {
	var out [4]Cell
	for i, c := range s.Cells {
		out[i] = Cell{Col: anchorCol + c.Col, Row: anchorRow + c.Row}
	}
	return out
}

// The 3-wide pieces sit one row lower than the I piece so that a spawn anchor of row -1
// puts every spawn state on the visible board.
var rawShapes = [Count][4][4]Cell{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	J: {
		{{0, 1}, {0, 2}, {1, 2}, {2, 2}},
		{{1, 1}, {2, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {2, 3}},
		{{1, 1}, {1, 2}, {0, 3}, {1, 3}},
	},
	L: {
		{{2, 1}, {0, 2}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {1, 3}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {0, 3}},
		{{0, 1}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	},
	S: {
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{1, 1}, {1, 2}, {2, 2}, {2, 3}},
		{{1, 2}, {2, 2}, {0, 3}, {1, 3}},
		{{0, 1}, {0, 2}, {1, 2}, {1, 3}},
	},
	T: {
		{{1, 1}, {0, 2}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {1, 3}},
		{{1, 1}, {0, 2}, {1, 2}, {1, 3}},
	},
	Z: {
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{2, 1}, {1, 2}, {2, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {1, 3}, {2, 3}},
		{{1, 1}, {0, 2}, {1, 2}, {0, 3}},
	},
}

var catalog = buildCatalog()

func buildCatalog() [Count][4]Shape {
	var out [Count][4]Shape
	for k := range rawShapes {
		for r, cells := range rawShapes[k] {
			out[k][r] = Shape{Cells: cells, Bounds: boundsOf(cells)}
		}
	}
	return out
}

func boundsOf(cells [4]Cell) Bounds {
	b := Bounds{MinCol: GridSize, MinRow: GridSize, MaxCol: -1, MaxRow: -1}
	for _, c := range cells {
		b.MinCol = min(b.MinCol, c.Col)
		b.MaxCol = max(b.MaxCol, c.Col)
		b.MinRow = min(b.MinRow, c.Row)
		b.MaxRow = max(b.MaxRow, c.Row)
	}
	return b
}

// ShapeOf returns the shape of kind k at rotation r. Both arguments are closed
// enumerations; anything else is a programmer error.
func ShapeOf(k Kind, r Rotation) Shape {
	if !k.Valid() || r < Spawn || r > Left {
		panic(fmt.Sprintf("piece: no shape for %v/%v", k, r))
	}
	return catalog[k][r]
}

// BoundsOf returns the bounding box of kind k at rotation r.
func BoundsOf(k Kind, r Rotation) Bounds {
	return ShapeOf(k, r).Bounds
}
