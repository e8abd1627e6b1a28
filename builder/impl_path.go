// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits directed edges idFn(i) → idFn(i+1) for i = 0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dyngraph/core"

const methodPath = "Path"

// Path returns a Constructor that builds a directed simple path on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
