package gridgraph

import "strings"

// FromTiles builds a Grid from rows of tile runes, one rune per cell.
// A cell is passable when its rune is in TileOptions.Passable. Every passable
// cell is connected to its passable orthogonal neighbours (and diagonal ones
// under WithDiagonal), in Position.Neighbours order. Blocked cells keep no
// connections but still exist as nodes.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromTiles(rows []string, opts ...Option) (*Grid, error) {
	o := DefaultTileOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}
	w := len(cells[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := New(Size{Width: uint32(w), Height: uint32(len(cells))})
	passable := func(p Position) bool {
		return g.InBounds(p) && strings.ContainsRune(o.Passable, cells[p.Y][p.X])
	}

	for i := range g.nodes {
		node := g.nodes[i]
		if o.Cost != nil {
			g.nodes[i].Cost = o.Cost(cells[node.Position.Y][node.Position.X])
		}
		if !passable(node.Position) {
			continue
		}
		var neighbours []Node
		for _, p := range node.Position.Neighbours(o.Diagonal) {
			if passable(p) {
				neighbours = append(neighbours, g.nodes[g.index(p)])
			}
		}
		g.Connect(node, neighbours...)
	}

	return g, nil
}
