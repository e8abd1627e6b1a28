// Package graphio reads directed graphs from text formats and writes graph
// snapshots as edge lists, either to files or into a badger key-value store.
//
// Supported input formats:
//
//	matrix-market  coordinate MatrixMarket (real, integer or pattern; general or symmetric)
//	edgelist       "<n> <m>" header followed by m "<u> <v> [<w>]" lines
//	snap-temporal  "<u> <v> <t>" lines, inserted in ascending t order
//
// Loaded graphs always allow self-loops; parallel edges are kept only when
// the caller passes core.WithMultiEdges().
package graphio
