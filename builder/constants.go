// Package builder defines shared constants used by graph builders.
package builder

// Minimum node counts per topology.
const (
	// MinCycleNodes is the smallest cycle that needs no self-loop.
	MinCycleNodes = 2
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinStarNodes is one hub plus one leaf.
	MinStarNodes = 2
	// MinCompleteNodes allows the trivial K_1.
	MinCompleteNodes = 1
	// MinRandomSparseNodes allows a single isolated vertex.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
