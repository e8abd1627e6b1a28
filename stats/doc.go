// Package stats extracts degree distributions from a core.Graph and compares
// them with Kullback–Leibler divergence.
//
// Distributions are ordered by degree (ascending) so that successive calls
// produce probability vectors with a stable index order. Comparison aligns
// two distributions over the union of their degree keys, zero-filling the
// side that lacks a key, before computing KL(P‖Q).
package stats
