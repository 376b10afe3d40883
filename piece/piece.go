// Package piece holds the static tetromino catalog: the seven kinds, their four rotation
// states, and the occupied cells of each (kind, rotation) pair inside a 4x4 local grid.
package piece

import "fmt"

// Kind identifies one of the seven tetrominoes. The declaration order is the order used
// when a random source picks a kind by index.
type Kind int

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// Count is the number of distinct kinds.
const Count = 7

var kindNames = [Count]string{"I", "J", "L", "O", "S", "T", "Z"}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, T, Z}
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

// ParseKind maps a single letter back to its kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Rotation is one of the four orientation states, conventionally labeled 0, R, 2 and L.
type Rotation int

const (
	Spawn Rotation = iota
	Right
	Flipped
	Left
)

var rotationNames = [4]string{"0", "R", "2", "L"}

func (r Rotation) String() string {
	if r < Spawn || r > Left {
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
	return rotationNames[r]
}

// CW returns the next state clockwise: 0 -> R -> 2 -> L -> 0.
func (r Rotation) CW() Rotation {
	return (r + 1) % 4
}

// CCW returns the next state counter-clockwise.
func (r Rotation) CCW() Rotation {
	return (r + 3) % 4
}
