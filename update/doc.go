// Package update samples batches of edge insertions and deletions for a
// directed core.Graph and applies them atomically.
//
// A Sampler is configured once with a Nature (how edges are chosen) and,
// for the custom nature, a Distribution (which vertices are favored as
// insertion targets). Each call to Sample reads the current graph state,
// draws from a caller-owned *rand.Rand and returns a Batch:
//
//	s, _ := update.NewSampler(update.SamplerConfig{
//		Nature:         update.NatureUniform,
//		BatchSize:      100,
//		EdgeInsertions: 0.8,
//		EdgeDeletions:  0.2,
//	})
//	b, _ := s.Sample(g, rng)
//	res, _ := update.Apply(g, b)
//
// Counts are math.Round(BatchSize*fraction); the two fractions are
// independent. Self-loops are never inserted. Without AllowDuplicateEdges an
// insertion that already exists in the graph or the batch is re-drawn; when
// the attempt budget runs out the batch is shorter and Batch.Shortfall
// reports by how much.
//
// The RNG is never shared across goroutines; NewRNG and DeriveRNG build
// independent deterministic streams.
package update
