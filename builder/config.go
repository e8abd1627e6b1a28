// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = index as int64 ("0","1","2",...)
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) int64
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     offsetID(0),
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// offsetID maps index i to base+i.
func offsetID(base int64) func(int) int64 {
	return func(i int) int64 { return base + int64(i) }
}
