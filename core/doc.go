// Package core provides the thread-safe, in-memory directed Graph that the
// batch-update pipeline mutates in place.
//
// The Graph G = (V,E) is keyed by int64 vertex IDs (dense or sparse). Each
// vertex carries an int data label and each directed edge an int64 weight.
//
//   - Self-loops (WithLoops)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Constant-time membership via nested maps:
//     out[from][to] = []weight (one entry per parallel edge, insertion order)
//   - Cached in/out degree counters, O(1) degree queries
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj),
//     always acquired in the order muVert -> muEdgeAdj
//
// Deterministic iteration:
//
//	Vertices(), ForEachVertex()      ascending vertex ID
//	ForEachEdge(u), Edges()          ascending (from, to); parallel edges in insertion order
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int64, data int) error   // O(1), idempotent
//	HasVertex(id int64) bool              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to, weight int64) error // O(1)
//	RemoveEdge(from, to int64) bool       // O(1); false when absent
//	HasEdge(from, to int64) bool          // O(1)
//
//	// Batches
//	ApplyBatch(del []EdgeKey, ins []Edge) (BatchResult, error) // one critical section
//
//	// Counts & degrees
//	Order() int, Size() int
//	Degree(id) (in, out int, err error), InDegree(id), OutDegree(id)
//
//	// Cloning
//	CloneEmpty() *Graph, Clone() *Graph
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
