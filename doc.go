// Package dyngraph generates reproducible dynamic-graph workloads: batches of
// edge insertions and deletions sampled from a configurable model, applied
// to an in-memory directed graph and checked against the intended degree
// distribution.
//
// 🚀 What is in the box?
//
//   - core/     : thread-safe directed graph with int64 keys and atomic ApplyBatch
//   - builder/  : seeded fixture constructors (Path, Cycle, Star, Complete, RandomSparse)
//   - update/   : update natures (custom, uniform, preferential) and the batch sampler
//   - stats/    : degree distributions, KL divergence, reachability
//   - graphio/  : matrix-market, edgelist and snap-temporal loaders; edgelist and badger sinks
//   - transform/: transpose, (un)symmetrize, loop padding, weight resets
//   - config/   : YAML options resolved into a typed Plan
//   - metrics/  : prometheus recorder, textfile dump and HTTP exposition
//   - driver/   : the Init → Load → Transform → BatchLoop pipeline
//   - cmd/dyngraph: the `run`, `generate` and `version` commands
//
// Quick start:
//
//	dyngraph generate --topology random --vertices 1000 --probability 0.01 --output-dir out/
//	dyngraph run --input-graph out/graph_1 --input-format edgelist \
//	    --update-nature preferential --batch-size-ratio 0.01 \
//	    --edge-insertions 0.8 --edge-deletions 0.2 --multi-batch 10 \
//	    --output-dir out/ --output-prefix pref --seed 42
//
// Every batch prints its out-degree histogram and the KL divergence between
// the sampled target distribution and the observed in-degree distribution,
// or the error that leaves it undefined.
package dyngraph
