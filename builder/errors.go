// SPDX-License-Identifier: MIT
// Package: dyngraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete (nil graph,
// nil constructor, or a core policy rejected an edge).
var ErrConstructFailed = errors.New("builder: construction failed")
