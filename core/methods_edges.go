// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/ForEachEdge.
// Determinism:
//   - Edges() and ForEachEdge() visit targets in ascending order; parallel
//     edges keep insertion order.
// Concurrency:
//   - Mutations take muVert then muEdgeAdj write locks.
//   - Read queries take muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge creates a directed edge from->to with the given weight, creating
// missing endpoints with data 0.
//
// Errors:
//   - ErrLoopNotAllowed: from==to and Looped()==false.
//   - ErrMultiEdgeNotAllowed: from->to exists and Multigraph()==false.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, weight int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if err := g.checkInsertLocked(from, to, 0); err != nil {
		return err
	}
	g.addVertexLocked(from, 0)
	g.addVertexLocked(to, 0)
	g.insertLocked(from, to, weight)

	return nil
}

// checkInsertLocked validates one insertion against the loop and multi-edge
// policies. pending is the number of from->to edges already queued in the
// same batch. Caller holds muEdgeAdj.
func (g *Graph) checkInsertLocked(from, to int64, pending int) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("%d->%d: %w", from, to, ErrLoopNotAllowed)
	}
	if !g.allowMulti && len(g.out[from][to])+pending > 0 {
		return fmt.Errorf("%d->%d: %w", from, to, ErrMultiEdgeNotAllowed)
	}

	return nil
}

// insertLocked stores from->to. Both endpoints must exist; caller holds both locks.
func (g *Graph) insertLocked(from, to, weight int64) {
	g.out[from][to] = append(g.out[from][to], weight)
	g.outDeg[from]++
	g.inDeg[to]++
	g.size++
}

// removeLocked deletes the oldest from->to edge. Caller holds muEdgeAdj.
func (g *Graph) removeLocked(from, to int64) bool {
	ws := g.out[from][to]
	if len(ws) == 0 {
		return false
	}
	if len(ws) == 1 {
		delete(g.out[from], to)
	} else {
		g.out[from][to] = ws[1:]
	}
	g.outDeg[from]--
	g.inDeg[to]--
	g.size--

	return true
}

// RemoveEdge deletes one from->to edge (the oldest parallel instance).
// It reports false, leaving g unchanged, when no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int64) bool {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	return g.removeLocked(from, to)
}

// HasEdge reports whether at least one edge from->to exists.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// EdgeWeight returns the weight of the oldest from->to edge.
func (g *Graph) EdgeWeight(from, to int64) (int64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ws := g.out[from][to]
	if len(ws) == 0 {
		return 0, ErrEdgeNotFound
	}

	return ws[0], nil
}

// outEdgesLocked lists u's outgoing edges by ascending target. Caller holds muEdgeAdj.
func (g *Graph) outEdgesLocked(u int64) []Edge {
	targets := g.out[u]
	vs := make([]int64, 0, len(targets))
	for v := range targets {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	edges := make([]Edge, 0, g.outDeg[u])
	for _, v := range vs {
		for _, w := range targets[v] {
			edges = append(edges, Edge{From: u, To: v, Weight: w})
		}
	}

	return edges
}

// ForEachEdge calls fn for every edge leaving u, by ascending target.
// Edges are snapshotted first; fn runs without locks held.
//
// Complexity: O(d log d) where d is the out-degree of u.
func (g *Graph) ForEachEdge(u int64, fn func(v, weight int64)) {
	g.muEdgeAdj.RLock()
	edges := g.outEdgesLocked(u)
	g.muEdgeAdj.RUnlock()

	for _, e := range edges {
		fn(e.To, e.Weight)
	}
}

// Edges returns every edge ordered by (From, To), parallel edges in insertion order.
//
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() []Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.size)
	for _, u := range g.sortedVerticesLocked() {
		out = append(out, g.outEdgesLocked(u)...)
	}

	return out
}
