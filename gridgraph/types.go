// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/tilepath.
package gridgraph

import "slices"

// Size is the declared grid dimension. Both axes are exclusive upper bounds.
type Size struct {
	Width, Height uint32
}

// Cells returns Width×Height.
func (s Size) Cells() int {
	return int(s.Width) * int(s.Height)
}

// Node is a single grid cell.
// ID equals the row-major index of Position under the grid's Size.
// Connections lists the ids this node leads to, in insertion order, without duplicates.
type Node struct {
	ID          uint32
	Position    Position
	Cost        uint64
	Connections []uint32
}

// NewNode returns a node with zero cost and no connections.
func NewNode(id uint32, pos Position) Node {
	return Node{ID: id, Position: pos}
}

// NodeScore is Score(a, b) plus both traversal costs.
func NodeScore(a, b Node) uint64 {
	return Score(a.Position, b.Position) + a.Cost + b.Cost
}

// IsConnected reports whether n has an arc to id.
func (n Node) IsConnected(id uint32) bool {
	return slices.Contains(n.Connections, id)
}

// clone returns n with its own copy of Connections.
func (n Node) clone() Node {
	n.Connections = slices.Clone(n.Connections)

	return n
}

// Edge is an undirected connection between two node ids, A < B.
type Edge struct {
	A, B uint32
}

// TileOptions configures FromTiles.
type TileOptions struct {
	// Passable lists the runes treated as walkable cells.
	Passable string
	// Diagonal also links passable diagonal neighbours.
	Diagonal bool
	// Cost, if non-nil, assigns a traversal cost per rune.
	Cost func(r rune) uint64
}

// Option configures FromTiles via functional arguments.
type Option func(*TileOptions)

// DefaultTileOptions returns TileOptions with default settings:
// Passable=".", Diagonal=false, no per-rune cost.
func DefaultTileOptions() TileOptions {
	return TileOptions{
		Passable: ".",
		Diagonal: false,
		Cost:     nil,
	}
}

// WithPassable sets the runes treated as walkable. An empty set is ignored.
func WithPassable(runes string) Option {
	return func(o *TileOptions) {
		if runes != "" {
			o.Passable = runes
		}
	}
}

// WithDiagonal links passable cells to their passable diagonal neighbours too.
func WithDiagonal() Option {
	return func(o *TileOptions) {
		o.Diagonal = true
	}
}

// WithCost assigns each cell's Cost from its rune.
func WithCost(fn func(r rune) uint64) Option {
	return func(o *TileOptions) {
		o.Cost = fn
	}
}
