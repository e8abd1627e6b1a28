// File: methods_batch.go
// Role: Atomic application of a (deletions, insertions) batch.
// Concurrency:
//   - One critical section under muVert and muEdgeAdj write locks, so readers
//     observe either the pre-batch or the post-batch graph.

package core

import "fmt"

// BatchResult reports how much of a batch actually changed the graph.
type BatchResult struct {
	// Deleted counts deletions that matched an existing edge.
	Deleted int
	// Inserted counts stored insertions.
	Inserted int
}

// SizeDelta is the change in Size() caused by the batch.
func (r BatchResult) SizeDelta() int { return r.Inserted - r.Deleted }

// ApplyBatch applies deletions first, then insertions, as one logical step.
//
// Implementation:
//   - Stage 1: Acquire muVert -> muEdgeAdj write locks.
//   - Stage 2: Validate every insertion against the post-deletion graph
//     (loop policy, multi-edge policy including duplicates inside the batch).
//     Any violation returns the error and nothing is applied.
//   - Stage 3: Remove each deletion if present; a missing edge is a no-op.
//   - Stage 4: Insert, creating missing endpoints with data 0. A zero
//     weight is stored as DefaultEdgeWeight.
//
// Complexity: O(|deletions| + |insertions|).
func (g *Graph) ApplyBatch(deletions []EdgeKey, insertions []Edge) (BatchResult, error) {
	var res BatchResult

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Count how many instances of each deleted pair will actually disappear so
	// the insertion check sees the post-deletion multiplicity.
	removed := make(map[EdgeKey]int, len(deletions))
	for _, d := range deletions {
		if len(g.out[d.From][d.To]) > removed[d] {
			removed[d]++
		}
	}
	pending := make(map[EdgeKey]int, len(insertions))
	for i, e := range insertions {
		k := e.Key()
		if err := g.checkInsertLocked(e.From, e.To, pending[k]-removed[k]); err != nil {
			return res, fmt.Errorf("ApplyBatch: insertion %d: %w", i, err)
		}
		pending[k]++
	}

	for _, d := range deletions {
		if g.removeLocked(d.From, d.To) {
			res.Deleted++
		}
	}
	for _, e := range insertions {
		w := e.Weight
		if w == 0 {
			w = DefaultEdgeWeight
		}
		g.addVertexLocked(e.From, 0)
		g.addVertexLocked(e.To, 0)
		g.insertLocked(e.From, e.To, w)
		res.Inserted++
	}

	return res, nil
}
