package gridgraph

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a dense, row-major collection of Nodes.
// len(nodes) == Width*Height and nodes[i].ID == i for the whole lifetime.
type Grid struct {
	size  Size
	nodes []Node
}

// New allocates Width×Height nodes in row-major order with zero cost
// and no connections.
// Complexity: O(W×H) time and memory.
func New(size Size) *Grid {
	nodes := make([]Node, 0, size.Cells())
	for y := uint32(0); y < size.Height; y++ {
		for x := uint32(0); x < size.Width; x++ {
			nodes = append(nodes, NewNode(y*size.Width+x, Position{X: x, Y: y}))
		}
	}

	return &Grid{size: size, nodes: nodes}
}

// FullyConnected builds a grid of the given size and links every node to
// each in-bounds orthogonal neighbour. Visiting every node produces both
// directed arcs of each edge.
// Complexity: O(W×H) time and memory.
func FullyConnected(size Size) *Grid {
	g := New(size)
	for i := range g.nodes {
		node := g.nodes[i]
		var neighbours []Node
		for _, p := range node.Position.Neighbours(false) {
			if g.InBounds(p) {
				neighbours = append(neighbours, g.nodes[g.index(p)])
			}
		}
		g.Connect(node, neighbours...)
	}

	return g
}

// Size returns the declared dimensions.
func (g *Grid) Size() Size {
	return g.size
}

// Len returns the number of nodes.
func (g *Grid) Len() int {
	return len(g.nodes)
}

// Nodes returns a copy of all nodes in id order.
func (g *Grid) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.clone()
	}

	return out
}

// InBounds reports whether p lies within the declared size.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X < g.size.Width && p.Y < g.size.Height
}

// Index maps p to its row-major id: y*Width + x. It does not check bounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) uint32 {
	return p.Y*g.size.Width + p.X
}

func (g *Grid) index(p Position) int {
	return int(g.Index(p))
}

// Coordinate converts a row-major id back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(id uint32) Position {
	return Position{X: id % g.size.Width, Y: id / g.size.Width}
}

// NodeAt returns the node at p.
// It panics with an error wrapping ErrOutOfBounds if p is outside the grid;
// callers are expected to validate positions with InBounds first.
// Complexity: O(1).
func (g *Grid) NodeAt(p Position) Node {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %s not within %dx%d", ErrOutOfBounds, p, g.size.Width, g.size.Height))
	}

	return g.nodes[g.index(p)]
}

// FindNode scans for the node whose position is p.
// It never panics and reports false when no node matches.
// Complexity: O(W×H).
func (g *Grid) FindNode(p Position) (Node, bool) {
	for _, n := range g.nodes {
		if n.Position == p {
			return n, true
		}
	}

	return Node{}, false
}

// SetCost replaces the traversal cost of the node at p.
// It panics like NodeAt when p is out of bounds.
func (g *Grid) SetCost(p Position, cost uint64) {
	n := g.NodeAt(p)
	g.nodes[n.ID].Cost = cost
}

// Connect adds directed arcs from node to each of neighbours.
// The stored connection list becomes the union of its previous ids and the
// neighbour ids, de-duplicated, in order of first occurrence. The reverse
// arcs are not added; call Connect for the other endpoint or use ConnectBoth.
// Complexity: O(c + k) for c existing and k new connections.
func (g *Grid) Connect(node Node, neighbours ...Node) {
	g.mustOwn(node.ID)
	prev := g.nodes[node.ID].Connections

	seen := mapset.New[uint32]()
	conns := make([]uint32, 0, len(prev)+len(neighbours))
	for _, id := range prev {
		seen.Put(id)
		conns = append(conns, id)
	}
	for _, nb := range neighbours {
		g.mustOwn(nb.ID)
		if seen.Has(nb.ID) {
			continue
		}
		seen.Put(nb.ID)
		conns = append(conns, nb.ID)
	}

	g.nodes[node.ID].Connections = conns
}

// ConnectBoth adds the arcs a→b and b→a.
func (g *Grid) ConnectBoth(a, b Node) {
	g.Connect(a, b)
	g.Connect(b, a)
}

// DisconnectAll removes every arc touching node: its own list is cleared and
// its id is stripped from every other node's list.
// Complexity: O(W×H + E).
func (g *Grid) DisconnectAll(node Node) {
	g.mustOwn(node.ID)
	g.nodes[node.ID].Connections = nil

	for i := range g.nodes {
		conns := g.nodes[i].Connections
		if !slices.Contains(conns, node.ID) {
			continue
		}
		kept := make([]uint32, 0, len(conns)-1)
		for _, id := range conns {
			if id != node.ID {
				kept = append(kept, id)
			}
		}
		g.nodes[i].Connections = kept
	}
}

// Edges returns the undirected edge set: one Edge per connected pair,
// A < B, sorted by (A, B). Self arcs are skipped.
// Complexity: O(E log E).
func (g *Grid) Edges() []Edge {
	set := mapset.New[Edge]()
	for _, n := range g.nodes {
		for _, id := range n.Connections {
			if id == n.ID {
				continue
			}
			set.Put(Edge{A: min(n.ID, id), B: max(n.ID, id)})
		}
	}

	out := make([]Edge, 0, set.Size())
	set.Each(func(e Edge) {
		out = append(out, e)
	})
	slices.SortFunc(out, func(x, y Edge) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}

		return cmp.Compare(x.B, y.B)
	})

	return out
}

// mustOwn panics if id does not address a node of g.
func (g *Grid) mustOwn(id uint32) {
	if int(id) >= len(g.nodes) {
		panic(fmt.Errorf("%w: node id %d not within %d nodes", ErrOutOfBounds, id, len(g.nodes)))
	}
}
