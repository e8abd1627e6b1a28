// File: methods_vertices.go
// Role: Vertex lifecycle, enumeration and degree queries.
//
// Determinism:
//   - Vertices() and ForEachVertex() visit IDs in ascending order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Degree counters protected by muEdgeAdj.
package core

import "sort"

// AddVertex inserts a vertex with the given data label if missing (idempotent).
// An existing vertex keeps its original data.
//
// Complexity: O(1) amortized.
// Concurrency: muVert write lock, then muEdgeAdj write lock for adjacency bootstrap.
func (g *Graph) AddVertex(id int64, data int) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.addVertexLocked(id, data)

	return nil
}

// addVertexLocked registers id if missing. Caller holds both write locks.
func (g *Graph) addVertexLocked(id int64, data int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Data: data}
	g.out[id] = make(map[int64][]int64)
}

// HasVertex reports whether the vertex ID exists.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexData returns the data label of id, or ErrVertexNotFound.
func (g *Graph) VertexData(id int64) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return v.Data, nil
}

// Vertices returns all vertex IDs in ascending order.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.sortedVerticesLocked()
}

// sortedVerticesLocked returns ascending vertex IDs. Caller holds muVert.
func (g *Graph) sortedVerticesLocked() []int64 {
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// ForEachVertex calls fn for every vertex in ascending ID order.
// The vertex set is snapshotted first, so fn runs without locks held and may
// query g; vertices added by fn are not visited.
//
// Complexity: O(V log V).
func (g *Graph) ForEachVertex(fn func(id int64, data int)) {
	g.muVert.RLock()
	ids := g.sortedVerticesLocked()
	data := make([]int, len(ids))
	for i, id := range ids {
		data[i] = g.vertices[id].Data
	}
	g.muVert.RUnlock()

	for i, id := range ids {
		fn(id, data[i])
	}
}

// Degree returns the in- and out-degree of id. A directed self-loop
// contributes +1 to each.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int64) (in, out int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.inDeg[id], g.outDeg[id], nil
}

// InDegree returns the number of edges ending at id (0 for unknown IDs).
func (g *Graph) InDegree(id int64) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.inDeg[id]
}

// OutDegree returns the number of edges leaving id (0 for unknown IDs).
func (g *Graph) OutDegree(id int64) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.outDeg[id]
}
