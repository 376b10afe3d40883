// Package board implements the 10x20 playfield: locked cells, placement, line clearing and
// the collision test used for every movement and rotation.
package board

import (
	"fmt"
	"strings"

	"github.com/plus3/stackfall/piece"
)

const (
	Width  = 10
	Height = 20
)

// Cell is the content of one board position: Empty or the label of the kind that was
// locked there. The label only matters for rendering.
type Cell uint8

// Empty marks a free cell.
const Empty Cell = 0

// Locked returns the cell label for kind k.
func Locked(k piece.Kind) Cell {
	return Cell(k) + 1
}

// Kind returns the kind a cell was locked with.
func (c Cell) Kind() (piece.Kind, bool) {
	if c == Empty {
		return 0, false
	}
	return piece.Kind(c - 1), true
}

func (c Cell) String() string {
	if k, ok := c.Kind(); ok {
		return k.String()
	}
	return "."
}

// Grid is a full copy of the playfield, row-major with row 0 at the top.
type Grid [Height][Width]Cell

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, c := range row {
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// View is read-only access to occupancy, which is all collision testing needs.
type View interface {
	IsOccupied(col, row int) bool
}

// Board holds the locked cells. The zero value is an empty board.
type Board struct {
	cells Grid
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// FromGrid returns a board holding a copy of g.
func FromGrid(g Grid) *Board {
	return &Board{cells: g}
}

// FromRows builds a board from text rows, top row first, using '.' for empty and kind
// letters for locked cells. Rows shorter than the board are padded at the top.
func FromRows(rows ...string) *Board {
	if len(rows) > Height {
		panic(fmt.Sprintf("board: %d rows exceeds height %d", len(rows), Height))
	}
	b := New()
	offset := Height - len(rows)
	for r, line := range rows {
		if len(line) != Width {
			panic(fmt.Sprintf("board: row %q is not %d wide", line, Width))
		}
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			k, ok := piece.ParseKind(string(ch))
			if !ok {
				panic(fmt.Sprintf("board: unknown cell %q", ch))
			}
			b.cells[offset+r][col] = Locked(k)
		}
	}
	return b
}

// IsOccupied reports whether (col,row) is outside the horizontal range or locked.
// Rows outside the board are not clamped here; the collision test owns vertical bounds.
func (b *Board) IsOccupied(col, row int) bool {
	if col < 0 || col >= Width {
		return true
	}
	if row < 0 || row >= Height {
		return false
	}
	return b.cells[row][col] != Empty
}

// Cell returns the content at (col,row), Empty when out of range.
func (b *Board) Cell(col, row int) Cell {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return Empty
	}
	return b.cells[row][col]
}

// Place writes kind k into every given cell. Callers must have checked the position with
// Collides first; any cell off the board panics.
func (b *Board) Place(k piece.Kind, cells []piece.Cell) {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= Width || c.Row < 0 || c.Row >= Height {
			panic(fmt.Sprintf("board: place %v at (%d,%d) outside the board", k, c.Col, c.Row))
		}
	}
	for _, c := range cells {
		b.cells[c.Row][c.Col] = Locked(k)
	}
}

// RowFull reports whether no cell in row is empty.
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= Height {
		return false
	}
	for _, c := range b.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRowsInRange removes every full row in [rowStart, rowEnd], shifting the rows
// above down and inserting empty rows at the top. Rows off the board are ignored.
// It returns the number of rows removed.
func (b *Board) ClearFullRowsInRange(rowStart, rowEnd int) int {
	cleared := 0
	for row := max(rowStart, 0); row <= min(rowEnd, Height-1); row++ {
		if !b.RowFull(row) {
			continue
		}
		// Shifting only touches rows at or above this one, so rows later in the scan keep
		// their index.
		copy(b.cells[1:row+1], b.cells[0:row])
		b.cells[0] = [Width]Cell{}
		cleared++
	}
	return cleared
}

// Grid returns a copy of the locked cells.
func (b *Board) Grid() Grid {
	return b.cells
}

// SnapshotWithOverlay returns a copy of the grid with cells drawn as kind k. Overlay cells
// above the visible board are dropped. The board itself is not modified.
func (b *Board) SnapshotWithOverlay(cells []piece.Cell, k piece.Kind) Grid {
	out := b.cells
	for _, c := range cells {
		if c.Col < 0 || c.Col >= Width || c.Row < 0 || c.Row >= Height {
			continue
		}
		out[c.Row][c.Col] = Locked(k)
	}
	return out
}

// Filled returns the number of locked cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = Grid{}
}

func (b *Board) String() string {
	return b.cells.String()
}
