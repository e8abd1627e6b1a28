package update

import "github.com/katalvlaran/dyngraph/core"

// snapshot is a read-only copy of the graph state one batch is drawn from.
type snapshot struct {
	vertices []int64 // ascending
	in, out  []int   // aligned with vertices
	edges    []core.Edge
	exists   map[core.EdgeKey]bool
}

func takeSnapshot(g *core.Graph) *snapshot {
	s := &snapshot{vertices: g.Vertices(), edges: g.Edges()}
	s.in = make([]int, len(s.vertices))
	s.out = make([]int, len(s.vertices))
	for i, v := range s.vertices {
		s.in[i] = g.InDegree(v)
		s.out[i] = g.OutDegree(v)
	}
	s.exists = make(map[core.EdgeKey]bool, len(s.edges))
	for _, e := range s.edges {
		s.exists[e.Key()] = true
	}
	return s
}

// nonLoopEdges returns the deletion candidates in (from, to) order.
func (s *snapshot) nonLoopEdges() []core.Edge {
	out := make([]core.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		if e.From != e.To {
			out = append(out, e)
		}
	}
	return out
}

// degreeIndex maps each vertex id to in+out.
func (s *snapshot) degreeIndex() map[int64]int {
	idx := make(map[int64]int, len(s.vertices))
	for i, v := range s.vertices {
		idx[v] = s.in[i] + s.out[i]
	}
	return idx
}

// pairFilter tracks which ordered pairs an insertion may still use.
type pairFilter struct {
	exists   map[core.EdgeKey]bool
	taken    map[core.EdgeKey]bool
	allowDup bool
}

func newPairFilter(s *snapshot, allowDup bool) *pairFilter {
	return &pairFilter{exists: s.exists, taken: make(map[core.EdgeKey]bool), allowDup: allowDup}
}

func (f *pairFilter) admissible(u, v int64) bool {
	if u == v {
		return false
	}
	if f.allowDup {
		return true
	}
	k := core.EdgeKey{From: u, To: v}
	return !f.exists[k] && !f.taken[k]
}

// take records u->v and reports whether it was admissible.
func (f *pairFilter) take(u, v int64) bool {
	if !f.admissible(u, v) {
		return false
	}
	f.taken[core.EdgeKey{From: u, To: v}] = true
	return true
}

func budget(count int) int { return attemptsPerEdge*count + minAttempts }
