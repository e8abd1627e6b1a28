// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is idFn(0); leaves are idFn(1..n-1).
//   - Emits spokes hub → leaf in increasing leaf order only, so the hub has
//     out-degree n-1 and every leaf has in-degree 1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/dyngraph/core"

const methodStar = "Star"

// Star returns a Constructor that builds an out-star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
