// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair (i,j), i≠j, in i-asc/j-asc order: n(n-1) edges.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dyngraph/core"

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
