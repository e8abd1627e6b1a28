// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j): include each
//     admissible directed edge independently with probability p.
//   - Self-loops only when g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc. Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dyngraph/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that samples a directed random graph
// over n vertices with independent edge probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		loops := g.Looped()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				// p ∈ {0,1} without rng is fully determined.
				if cfg.rng == nil {
					if p < 1.0 {
						continue
					}
				} else if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
