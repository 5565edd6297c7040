package gridgraph

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/stack"
)

// PathSolver finds an ordered route from start to target.
// The route excludes start and ends with target; ok is false when target
// cannot be reached. Both *Grid and *pathcache.PathCache implement it.
type PathSolver interface {
	Solve(start, target Position) (path []Position, ok bool)
}

var _ PathSolver = (*Grid)(nil)

// searchRecord is one frontier entry.
// cost is computed once on push and never reorders the frontier.
type searchRecord struct {
	node   Node
	parent Node
	depth  uint64
	cost   uint64
}

// FindPath searches from start to target depth-first over the connection lists.
//
// Behavior:
//  1. Resolve start and target with NodeAt (panics on out-of-bounds).
//  2. Seed visited with start→start and push a self-parented start record.
//  3. Pop the newest record. If it sits on target, rebuild the path.
//  4. Otherwise push every connection not yet visited, in adjacency order,
//     recording the current node as its parent.
//  5. An empty frontier means target is unreachable: (nil, false).
//
// The path excludes start and ends with target; start == target yields [target].
// Complexity: O(V + E) time, O(V) memory.
func (g *Grid) FindPath(start, target Position) ([]Position, bool) {
	startNode := g.NodeAt(start)
	targetNode := g.NodeAt(target)

	visited := map[Position]Node{startNode.Position: startNode}
	frontier := stack.New[searchRecord]()
	frontier.Push(searchRecord{
		node:   startNode,
		parent: startNode,
		depth:  0,
		cost:   NodeScore(startNode, targetNode),
	})

	for frontier.Size() > 0 {
		current := frontier.Pop()
		if current.node.Position == targetNode.Position {
			return reconstructPath(visited, current.parent.Position, targetNode.Position), true
		}

		for _, id := range current.node.Connections {
			next := g.nodes[id]
			if _, seen := visited[next.Position]; seen {
				continue
			}
			visited[next.Position] = current.node
			frontier.Push(searchRecord{
				node:   next,
				parent: current.node,
				depth:  current.depth + 1,
				cost:   NodeScore(next, targetNode),
			})
		}
	}

	return nil, false
}

// Solve implements PathSolver.
func (g *Grid) Solve(start, target Position) ([]Position, bool) {
	return g.FindPath(start, target)
}

// SafeFindPath is FindPath for callers that cannot validate positions.
// It returns an error wrapping ErrOutOfBounds instead of panicking, and
// ErrNoPath when target is unreachable.
func (g *Grid) SafeFindPath(start, target Position) ([]Position, error) {
	for _, p := range [2]Position{start, target} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %s not within %dx%d", ErrOutOfBounds, p, g.size.Width, g.size.Height)
		}
	}

	path, ok := g.FindPath(start, target)
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, start, target)
	}

	return path, nil
}

// reconstructPath walks parent links from `from` back to the self-parented
// root, excluding the root, reverses them and appends target.
func reconstructPath(visited map[Position]Node, from, target Position) []Position {
	var path []Position
	current := from
	for {
		parent, ok := visited[current]
		if !ok || parent.Position == current {
			break
		}
		path = append(path, current)
		current = parent.Position
	}
	slices.Reverse(path)

	return append(path, target)
}
