package gridgraph

import (
	"fmt"
	"math"
)

// Position is a cell coordinate. It is comparable and usable as a map key.
type Position struct {
	X, Y uint32
}

// orthogonalOffsets and diagonalOffsets fix the neighbour enumeration order.
// FindPath results depend on it through the adjacency lists built from it.
var (
	orthogonalOffsets = [4][2]int64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalOffsets   = [4][2]int64{{-1, -1}, {1, 1}, {-1, 1}, {1, -1}}
)

// Neighbours returns the orthogonal neighbours of p (right, down, left, up),
// followed by the four diagonals when allowDiagonal is set.
// Neighbours with a negative coordinate are dropped. Positions past the
// grid's upper bounds are kept; Grid.InBounds filters them.
func (p Position) Neighbours(allowDiagonal bool) []Position {
	out := make([]Position, 0, 8)
	out = p.appendOffsets(out, orthogonalOffsets[:])
	if allowDiagonal {
		out = p.appendOffsets(out, diagonalOffsets[:])
	}

	return out
}

func (p Position) appendOffsets(out []Position, offsets [][2]int64) []Position {
	for _, d := range offsets {
		x, y := int64(p.X)+d[0], int64(p.Y)+d[1]
		if x < 0 || y < 0 || x > math.MaxUint32 || y > math.MaxUint32 {
			continue
		}
		out = append(out, Position{X: uint32(x), Y: uint32(y)})
	}

	return out
}

// Compare orders positions by X, then Y. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}

	return 0
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Score is floor(euclidean distance) + 1. It is never zero, even for a == b.
// Complexity: O(1).
func Score(a, b Position) uint64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)

	return uint64(math.Floor(math.Sqrt(dx*dx+dy*dy))) + 1
}
