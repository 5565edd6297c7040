package pathcache

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/gridgraph"
)

func pos(x, y uint32) gridgraph.Position {
	return gridgraph.Position{X: x, Y: y}
}

// corridorGrid builds:
//
//	. . .
//	# # .
//	. . .
func corridorGrid(t *testing.T) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromTiles([]string{"...", "##.", "..."})
	require.NoError(t, err)

	return g
}

var corridorPath = []gridgraph.Position{pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2), pos(1, 2), pos(0, 2)}

//----------------------------------------------------------------------------//
// Lookup and FIFO
//----------------------------------------------------------------------------//

func TestFindPath_MatchesGridAndStoresOnce(t *testing.T) {
	c := New(corridorGrid(t), 10)

	path, ok := c.FindPath(pos(0, 0), pos(0, 2))
	require.True(t, ok)
	assert.Equal(t, corridorPath, path)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, []CachedPath{{StartID: 0, TargetID: 6, Path: corridorPath}}, c.Entries())
}

func TestFindPath_Idempotent(t *testing.T) {
	c := New(corridorGrid(t), 10)

	first, ok := c.FindPath(pos(0, 0), pos(0, 2))
	require.True(t, ok)
	second, ok := c.FindPath(pos(0, 0), pos(0, 2))
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.misses))
}

// TestFindPath_EvictsOldest fills a single-slot cache twice.
func TestFindPath_EvictsOldest(t *testing.T) {
	c := New(corridorGrid(t), 1)

	_, ok := c.FindPath(pos(0, 0), pos(0, 2))
	require.True(t, ok)

	path, ok := c.FindPath(pos(1, 0), pos(2, 1))
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Position{pos(2, 0), pos(2, 1)}, path)

	assert.Equal(t, []CachedPath{{StartID: 1, TargetID: 5, Path: path}}, c.Entries())
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.evictions))
}

// TestFindPath_HitDoesNotPromote checks FIFO (not LRU) order: a hit on the
// oldest entry does not save it from eviction.
func TestFindPath_HitDoesNotPromote(t *testing.T) {
	c := New(corridorGrid(t), 2)

	_, _ = c.FindPath(pos(0, 0), pos(0, 2)) // A
	_, _ = c.FindPath(pos(1, 0), pos(2, 1)) // B
	_, _ = c.FindPath(pos(0, 0), pos(0, 2)) // hit A
	_, _ = c.FindPath(pos(2, 2), pos(0, 2)) // C evicts A

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, [2]uint32{1, 5}, [2]uint32{entries[0].StartID, entries[0].TargetID})
	assert.Equal(t, [2]uint32{8, 6}, [2]uint32{entries[1].StartID, entries[1].TargetID})
}

func TestFindPath_RingWrapsInOrder(t *testing.T) {
	c := New(gridgraph.FullyConnected(gridgraph.Size{Width: 4, Height: 1}), 3)

	for x := uint32(1); x < 4; x++ {
		_, ok := c.FindPath(pos(0, 0), pos(x, 0))
		require.True(t, ok)
	}
	for x := uint32(0); x < 3; x++ {
		_, ok := c.FindPath(pos(3, 0), pos(x, 0))
		require.True(t, ok)
		assert.LessOrEqual(t, c.Len(), c.Cap())
	}

	var targets []uint32
	for _, e := range c.Entries() {
		assert.Equal(t, uint32(3), e.StartID)
		targets = append(targets, e.TargetID)
	}
	assert.Equal(t, []uint32{0, 1, 2}, targets)
}

func TestFindPath_UnreachableNotCached(t *testing.T) {
	c := New(gridgraph.New(gridgraph.Size{Width: 3, Height: 3}), 4)

	path, ok := c.FindPath(pos(0, 0), pos(2, 2))
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.Zero(t, c.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.misses))
}

func TestFindPath_ZeroCapacity(t *testing.T) {
	c := New(corridorGrid(t), 0)

	for i := 0; i < 2; i++ {
		path, ok := c.FindPath(pos(0, 0), pos(0, 2))
		require.True(t, ok)
		assert.Equal(t, corridorPath, path)
	}
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Cap())
	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.misses))
	assert.Zero(t, testutil.ToFloat64(c.metrics.evictions))

	assert.Zero(t, New(corridorGrid(t), -3).Cap())
}

func TestFindPath_OutOfBoundsPanics(t *testing.T) {
	c := New(corridorGrid(t), 2)

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, gridgraph.ErrOutOfBounds), "got %v", err)
	}()
	c.FindPath(pos(3, 0), pos(0, 0))
}

func TestFindPath_ReturnsCopies(t *testing.T) {
	c := New(corridorGrid(t), 2)

	path, _ := c.FindPath(pos(0, 0), pos(0, 2))
	path[0] = pos(9, 9)
	hit, _ := c.FindPath(pos(0, 0), pos(0, 2))
	hit[1] = pos(9, 9)

	assert.Equal(t, corridorPath, c.Entries()[0].Path)
}

func TestSolve_UsesCache(t *testing.T) {
	c := New(corridorGrid(t), 2)
	var solver gridgraph.PathSolver = c

	got, ok := solver.Solve(pos(0, 0), pos(0, 2))
	require.True(t, ok)
	assert.Equal(t, corridorPath, got)
	assert.Equal(t, 1, c.Len())
}

//----------------------------------------------------------------------------//
// Invalidation
//----------------------------------------------------------------------------//

// TestDisconnectAll_DropsPathsThroughNode cuts (2,1), the only way from the
// top row to the bottom row.
func TestDisconnectAll_DropsPathsThroughNode(t *testing.T) {
	c := New(corridorGrid(t), 10)

	_, _ = c.FindPath(pos(0, 0), pos(0, 2)) // passes through (2,1)
	_, _ = c.FindPath(pos(1, 0), pos(0, 0)) // [(0,0)]
	_, _ = c.FindPath(pos(2, 1), pos(2, 0)) // starts at (2,1), path [(2,0)]
	require.Equal(t, 3, c.Len())

	c.DisconnectAll(c.Grid().NodeAt(pos(2, 1)))

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, []gridgraph.Position{pos(0, 0)}, entries[0].Path)
	assert.Equal(t, uint32(5), entries[1].StartID, "start-only reference is kept")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.invalidations))

	// The cut is real: the next search misses and finds nothing.
	_, ok := c.FindPath(pos(0, 0), pos(0, 2))
	assert.False(t, ok)
	assert.Empty(t, c.Grid().NodeAt(pos(2, 1)).Connections)
}

func TestDisconnectAll_UnrelatedNodeKeepsEntries(t *testing.T) {
	c := New(corridorGrid(t), 10)
	_, _ = c.FindPath(pos(0, 0), pos(0, 2))

	c.DisconnectAll(c.Grid().NodeAt(pos(1, 1)))

	assert.Equal(t, 1, c.Len())
	assert.Zero(t, testutil.ToFloat64(c.metrics.invalidations))
}

// TestDisconnectAll_AfterWrap compacts a ring whose head is not at slot 0.
func TestDisconnectAll_AfterWrap(t *testing.T) {
	c := New(gridgraph.FullyConnected(gridgraph.Size{Width: 4, Height: 1}), 2)

	_, _ = c.FindPath(pos(0, 0), pos(1, 0)) // [(1,0)]
	_, _ = c.FindPath(pos(0, 0), pos(2, 0)) // [(1,0) (2,0)]
	_, _ = c.FindPath(pos(3, 0), pos(2, 0)) // [(2,0)], evicts the first

	c.DisconnectAll(c.Grid().NodeAt(pos(1, 0)))

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []gridgraph.Position{pos(2, 0)}, entries[0].Path)

	_, ok := c.FindPath(pos(3, 0), pos(3, 0))
	require.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestConnect_RestoresRoute(t *testing.T) {
	c := New(gridgraph.New(gridgraph.Size{Width: 2, Height: 1}), 2)
	a, b := c.Grid().NodeAt(pos(0, 0)), c.Grid().NodeAt(pos(1, 0))

	_, ok := c.FindPath(a.Position, b.Position)
	require.False(t, ok)

	c.Connect(a, b)
	path, ok := c.FindPath(a.Position, b.Position)
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Position{pos(1, 0)}, path)
}

func TestClear(t *testing.T) {
	c := New(corridorGrid(t), 3)
	_, _ = c.FindPath(pos(0, 0), pos(0, 2))
	c.Clear()

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Entries())
	assert.Zero(t, testutil.ToFloat64(c.metrics.entries))
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(corridorGrid(t), 3, WithRegisterer(reg), WithNamespace("game"))
	_, _ = c.FindPath(pos(0, 0), pos(0, 2))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"game_pathcache_hits_total",
		"game_pathcache_misses_total",
		"game_pathcache_evictions_total",
		"game_pathcache_invalidations_total",
		"game_pathcache_entries",
	}, names)

	assert.Panics(t, func() { New(corridorGrid(t), 3, WithRegisterer(reg), WithNamespace("game")) })
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New(corridorGrid(t), 1, WithLogger(logger))

	_, _ = c.FindPath(pos(0, 0), pos(0, 2))
	_, _ = c.FindPath(pos(1, 0), pos(2, 1))
	assert.Contains(t, buf.String(), "pathcache: evicted path")
	assert.Contains(t, buf.String(), "start_id=0")

	c.DisconnectAll(c.Grid().NodeAt(pos(2, 1)))
	assert.Contains(t, buf.String(), "pathcache: invalidated paths")
	assert.Contains(t, buf.String(), "dropped=1")
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.NotNil(t, o.Logger)
	assert.Nil(t, o.Registerer)
	assert.Equal(t, DefaultNamespace, o.Namespace)

	WithLogger(nil)(&o)
	WithNamespace("")(&o)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, DefaultNamespace, o.Namespace)
}
