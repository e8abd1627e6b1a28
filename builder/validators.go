// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dyngraph/core"
)

// validateMin ensures that got ≥ min, returning ErrTooFewVertices with the method context otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id, i); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u->v with the configured weight, wrapping core errors.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int64) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
