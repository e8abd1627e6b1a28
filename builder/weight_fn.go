// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dyngraph/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns core.DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return core.DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Panics if min < 0 or max < min.
// If rng is nil, yields core.DefaultEdgeWeight to keep the fallback deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return core.DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
