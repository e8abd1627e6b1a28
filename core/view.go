// File: view.go
// Role: Non-mutating graph views (cloning topology with altered edges).
// Determinism:
//   - Vertices are copied with their data; edges are visited in Edges() order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// MapEdges returns a new Graph holding every vertex of g and, for each edge
// e of g in Edges() order, the edge fn(e) when fn reports keep==true. The
// result carries g's flags plus any extra opts. The input graph is not mutated.
//
// Edges that violate the result's loop or multi-edge policy are dropped.
//
// Complexity: O(V + E log E).
func MapEdges(g *Graph, fn func(e Edge) (mapped Edge, keep bool), opts ...GraphOption) *Graph {
	out := NewGraph(append(g.options(), opts...)...)

	g.ForEachVertex(func(id int64, data int) {
		out.vertices[id] = &Vertex{ID: id, Data: data}
		out.out[id] = make(map[int64][]int64)
	})

	for _, e := range g.Edges() {
		m, keep := fn(e)
		if !keep {
			continue
		}
		if out.checkInsertLocked(m.From, m.To, 0) != nil {
			continue
		}
		out.addVertexLocked(m.From, 0)
		out.addVertexLocked(m.To, 0)
		out.insertLocked(m.From, m.To, m.Weight)
	}

	return out
}

// InducedSubgraph returns a new Graph induced by keep: only vertices with
// keep[id]==true and the edges whose endpoints are both kept.
//
// Complexity: O(V + E log E).
func InducedSubgraph(g *Graph, keep map[int64]bool) *Graph {
	out := NewGraph(g.options()...)

	g.ForEachVertex(func(id int64, data int) {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id, Data: data}
			out.out[id] = make(map[int64][]int64)
		}
	})
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			out.insertLocked(e.From, e.To, e.Weight)
		}
	}

	return out
}
