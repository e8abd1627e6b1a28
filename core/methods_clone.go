// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Data: v.Data}
		clone.out[id] = make(map[int64][]int64)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and counters.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for u, targets := range g.out {
		for v, ws := range targets {
			clone.out[u][v] = append([]int64(nil), ws...)
		}
	}
	for id, d := range g.inDeg {
		clone.inDeg[id] = d
	}
	for id, d := range g.outDeg {
		clone.outDeg[id] = d
	}
	clone.size = g.size

	return clone
}

// Clear removes all vertices and edges but preserves configuration flags.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[int64]*Vertex)
	g.out = make(map[int64]map[int64][]int64)
	g.inDeg = make(map[int64]int)
	g.outDeg = make(map[int64]int)
	g.size = 0
}
