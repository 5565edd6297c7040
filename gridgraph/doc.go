// Package gridgraph models a rectangular tile map as a dense graph of cells
// and finds routes between them.
//
// What:
//
//   - Grid holds Width×Height Nodes in a flat slice addressed by row-major id
//     (id = y*Width + x). The slice is never resized.
//   - Each Node carries its Position, a traversal Cost and an ordered,
//     duplicate-free list of connected node ids.
//   - Connect adds directed arcs; DisconnectAll removes every arc touching a node.
//   - FindPath walks the connections depth-first from start to target.
//   - FromTiles builds a Grid from rows of passable/blocked runes.
//
// Why:
//
//   - Game maps: route units across walkable tiles.
//   - Level tooling: check that a door is reachable before shipping a map.
//   - Embedding: Grid and pathcache.PathCache both satisfy PathSolver.
//
// Search order:
//
//	The frontier is a stack. Connections are pushed in adjacency order and the
//	most recently discovered branch is explored first, so the returned path is
//	the first depth-first path found, not necessarily the cheapest. The score
//	attached to each frontier record (Score + endpoint costs) is informational
//	and never reorders the frontier.
//
// Complexity:
//
//   - New, FullyConnected: O(W×H), Memory: O(W×H).
//   - NodeAt:              O(1).
//   - FindNode:            O(W×H).
//   - Connect:             O(c + k) for c existing and k new connections.
//   - DisconnectAll:       O(W×H + E).
//   - FindPath:            O(V + E), Memory: O(V).
//
// Errors:
//
//   - ErrOutOfBounds: position outside the declared size. NodeAt and FindPath
//     panic with it; SafeFindPath returns it.
//   - ErrNoPath: SafeFindPath found no route.
//   - ErrEmptyGrid, ErrNonRectangular: FromTiles input is not a rectangle.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. Serialize mutation and search
//	externally or give each worker its own Grid.
package gridgraph
