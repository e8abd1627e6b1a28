// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration flags and catalog sizes.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph, counts are read under the owning lock.

package core

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same ordered pair are permitted.
// If false, a second AddEdge(from,to,...) is rejected with ErrMultiEdgeNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Order returns the number of vertices.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Order() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Size returns the number of directed edges, counting parallel edges individually.
//
// Complexity: O(1). Concurrency: muEdgeAdj read lock.
func (g *Graph) Size() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.size
}

// GraphStats is a snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}

// Stats produces a read-only snapshot of flags and counts, including the
// number of self-loops currently stored.
//
// Implementation:
//   - Stage 1: muVert.RLock, snapshot vertex count, release.
//   - Stage 2: muEdgeAdj.RLock, snapshot edge count and count loops, release.
//
// Complexity: O(V) for the loop scan.
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.size
	for u, targets := range g.out {
		stats.LoopCount += len(targets[u])
	}
	g.muEdgeAdj.RUnlock()

	return stats
}
