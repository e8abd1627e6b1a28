// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits the path 0→1→…→n-1 and closes it with n-1 → 0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dyngraph/core"

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds a directed ring on n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
