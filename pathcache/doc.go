// Package pathcache memoizes gridgraph search results for repeated
// start/target pairs.
//
// What:
//
//   - PathCache owns a *gridgraph.Grid and a bounded FIFO of CachedPath
//     entries keyed by (start id, target id).
//   - A hit returns the stored path without touching FIFO order (not an LRU).
//   - A miss searches the grid; a found path is stored, evicting the oldest
//     entry first when the cache is full. Misses without a path are not stored.
//   - DisconnectAll drops every entry whose path passes through the
//     disconnected node's position. Entries that only start or end there stay.
//
// Options:
//
//   - WithLogger(l)     debug records on eviction and invalidation.
//   - WithRegisterer(r) registers hit/miss/eviction/invalidation metrics.
//   - WithNamespace(ns) prefixes metric names; defaults to "tilepath".
//
// A capacity of zero is valid: every lookup misses and nothing is retained.
//
// Concurrency:
//
//	A PathCache is not safe for concurrent use, same as the Grid it owns.
package pathcache
