package gridgraph

import "slices"

// ConnectedComponents groups node ids reachable from one another through
// connections. Arcs are followed in both directions, so a half-connected
// pair still lands in one component. Each component is sorted ascending and
// components are ordered by their smallest id; an unconnected node forms a
// singleton component.
//
// Time:   O(V + E).
// Memory: O(V + E) for the undirected view and seen flags.
func (g *Grid) ConnectedComponents() [][]uint32 {
	undirected := make([][]uint32, len(g.nodes))
	for _, n := range g.nodes {
		for _, id := range n.Connections {
			undirected[n.ID] = append(undirected[n.ID], id)
			undirected[id] = append(undirected[id], n.ID)
		}
	}

	seen := make([]bool, len(g.nodes))
	var comps [][]uint32
	for i := range g.nodes {
		if seen[i] {
			continue
		}
		// BFS to collect component
		queue := []uint32{uint32(i)}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range undirected[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// SameComponent reports whether a and b share a connected component.
// With symmetric connections this is exactly FindPath's reachability.
// It panics like NodeAt when either position is out of bounds.
func (g *Grid) SameComponent(a, b Position) bool {
	from, to := g.NodeAt(a), g.NodeAt(b)
	for _, comp := range g.ConnectedComponents() {
		if _, ok := slices.BinarySearch(comp, from.ID); ok {
			_, ok = slices.BinarySearch(comp, to.ID)
			return ok
		}
	}

	return false
}
