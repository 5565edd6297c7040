// Package tilepath finds routes across rectangular tile maps.
//
// A map is a dense grid of cells. Each cell knows its position, a traversal
// cost and the cells it connects to; a route is the ordered list of positions
// from a start cell (excluded) to a target cell (included).
//
// Under the hood, everything is organized under two subpackages:
//
//	gridgraph/ — Position, Node and Grid; connectivity mutation, depth-first
//	             path search, tile-map construction, connected components
//	pathcache/ — bounded FIFO memo of solved routes in front of a Grid, with
//	             invalidation on disconnect and Prometheus metrics
//
// Quick ASCII example:
//
//	. . .        start (0,0), target (0,2)
//	# # .        route: (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)
//	. . .
//
// Both *gridgraph.Grid and *pathcache.PathCache implement
// gridgraph.PathSolver, so callers can depend on the capability alone.
//
// Neither type is safe for concurrent use; give each worker its own grid or
// serialize access externally.
//
//	go get github.com/katalvlaran/tilepath
package tilepath
