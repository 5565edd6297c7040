package pathcache

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/tilepath/gridgraph"
)

var _ gridgraph.PathSolver = (*PathCache)(nil)

// PathCache sits in front of a Grid and remembers up to Cap solved paths.
// Entries live in a ring buffer, oldest first; Len() <= Cap() at all times.
type PathCache struct {
	grid *gridgraph.Grid

	ring  []CachedPath // fixed length == capacity
	head  int          // index of the oldest entry
	count int

	log     *slog.Logger
	metrics *metrics
}

// New wraps grid in a cache holding at most capacity paths.
// A non-positive capacity retains nothing.
// It panics if WithRegisterer is given a registry that already holds
// metrics under the same namespace.
func New(grid *gridgraph.Grid, capacity int, opts ...Option) *PathCache {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m := newMetrics(o.Namespace)
	m.register(o.Registerer)

	return &PathCache{
		grid:    grid,
		ring:    make([]CachedPath, max(capacity, 0)),
		log:     o.Logger,
		metrics: m,
	}
}

// Grid returns the wrapped grid. Mutating it directly bypasses invalidation.
func (c *PathCache) Grid() *gridgraph.Grid {
	return c.grid
}

// Len returns the number of cached paths.
func (c *PathCache) Len() int {
	return c.count
}

// Cap returns the maximum number of cached paths.
func (c *PathCache) Cap() int {
	return len(c.ring)
}

// Entries returns a copy of the cached paths, oldest first.
func (c *PathCache) Entries() []CachedPath {
	out := make([]CachedPath, 0, c.count)
	for i := 0; i < c.count; i++ {
		e := c.at(i)
		e.Path = slices.Clone(e.Path)
		out = append(out, e)
	}

	return out
}

// Clear drops every cached path.
func (c *PathCache) Clear() {
	clear(c.ring)
	c.head, c.count = 0, 0
	c.metrics.entries.Set(0)
}

// FindPath returns the cached path for (start, target) or searches the grid.
// Hits do not reorder the FIFO. A found path is stored, evicting the oldest
// entry when the cache is full; a failed search is returned and not stored.
// It panics like gridgraph.Grid.NodeAt when a position is out of bounds.
func (c *PathCache) FindPath(start, target gridgraph.Position) ([]gridgraph.Position, bool) {
	startID := c.grid.NodeAt(start).ID
	targetID := c.grid.NodeAt(target).ID

	for i := 0; i < c.count; i++ {
		if e := c.at(i); e.StartID == startID && e.TargetID == targetID {
			c.metrics.hits.Inc()

			return slices.Clone(e.Path), true
		}
	}
	c.metrics.misses.Inc()

	path, ok := c.grid.FindPath(start, target)
	if !ok {
		return nil, false
	}
	c.push(CachedPath{StartID: startID, TargetID: targetID, Path: slices.Clone(path)})

	return path, true
}

// Solve implements gridgraph.PathSolver.
func (c *PathCache) Solve(start, target gridgraph.Position) ([]gridgraph.Position, bool) {
	return c.FindPath(start, target)
}

// Connect forwards to the grid. Adding arcs never invalidates a stored path.
func (c *PathCache) Connect(node gridgraph.Node, neighbours ...gridgraph.Node) {
	c.grid.Connect(node, neighbours...)
}

// DisconnectAll removes every arc touching node, then drops each cached
// path that passes through node's position. Paths that merely start at the
// node are kept since the start is not part of a stored path.
func (c *PathCache) DisconnectAll(node gridgraph.Node) {
	c.grid.DisconnectAll(node)

	kept := make([]CachedPath, 0, c.count)
	for i := 0; i < c.count; i++ {
		if e := c.at(i); !e.Contains(node.Position) {
			kept = append(kept, e)
		}
	}
	dropped := c.count - len(kept)
	if dropped == 0 {
		return
	}

	clear(c.ring)
	copy(c.ring, kept)
	c.head, c.count = 0, len(kept)

	c.metrics.invalidations.Add(float64(dropped))
	c.metrics.entries.Set(float64(c.count))
	c.log.Debug("pathcache: invalidated paths",
		slog.String("position", node.Position.String()),
		slog.Int("dropped", dropped),
		slog.Int("remaining", c.count))
}

// at returns the i-th entry counted from the oldest.
func (c *PathCache) at(i int) CachedPath {
	return c.ring[(c.head+i)%len(c.ring)]
}

// push appends e, evicting the oldest entry first when full.
func (c *PathCache) push(e CachedPath) {
	if len(c.ring) == 0 {
		return
	}

	if c.count == len(c.ring) {
		old := c.ring[c.head]
		c.ring[c.head] = e
		c.head = (c.head + 1) % len(c.ring)

		c.metrics.evictions.Inc()
		c.log.Debug("pathcache: evicted path",
			slog.Uint64("start_id", uint64(old.StartID)),
			slog.Uint64("target_id", uint64(old.TargetID)))

		return
	}

	c.ring[(c.head+c.count)%len(c.ring)] = e
	c.count++
	c.metrics.entries.Set(float64(c.count))
}
