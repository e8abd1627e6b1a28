// SPDX-License-Identifier: MIT
// Package: dyngraph/stats
//
// divergence.go - Kullback–Leibler divergence and key alignment.

package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroSupportMismatch reports P[i] > 0 where Q[i] == 0; KL is undefined there.
var ErrZeroSupportMismatch = errors.New("stats: zero support mismatch")

// ErrEmptyTarget reports an expected distribution with no mass, e.g. a batch
// drawn by a nature that records no target weights.
var ErrEmptyTarget = errors.New("stats: empty target distribution")

// KLDivergence returns Σ P[i]·ln(P[i]/Q[i]) over the union of indices, with a
// missing index treated as 0. Terms with P[i] == 0 contribute nothing.
// Inputs are expected to be normalized already; no renormalization happens.
func KLDivergence(p, q []float64) (float64, error) {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	var kl float64
	for i := 0; i < n; i++ {
		pi, qi := at(p, i), at(q, i)
		if pi <= 0 {
			continue
		}
		if qi <= 0 {
			return 0, fmt.Errorf("KLDivergence: index %d: P=%g, Q=0: %w", i, pi, ErrZeroSupportMismatch)
		}
		kl += pi * math.Log(pi/qi)
	}
	return kl, nil
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// Align projects p and q onto the ascending union of their keys. Each side
// is divided by its own total; keys missing on one side become 0 there.
func Align(p, q *Distribution) (pv, qv []float64, keys []int) {
	seen := NewDistribution()
	p.Each(func(k int, _ float64) { seen.Add(k, 0) })
	q.Each(func(k int, _ float64) { seen.Add(k, 0) })
	keys = seen.Keys()

	pv = make([]float64, len(keys))
	qv = make([]float64, len(keys))
	for i, k := range keys {
		if p.total > 0 {
			pv[i] = p.Get(k) / p.total
		}
		if q.total > 0 {
			qv[i] = q.Get(k) / q.total
		}
	}
	return pv, qv, keys
}

// Divergence aligns the expected distribution p with the observed q and
// returns KL(p‖q). The error names the degree key on a support mismatch.
func Divergence(p, q *Distribution) (float64, error) {
	if p.total <= 0 {
		return 0, fmt.Errorf("Divergence: %w", ErrEmptyTarget)
	}
	pv, qv, keys := Align(p, q)
	for i := range keys {
		if pv[i] > 0 && qv[i] == 0 {
			return 0, fmt.Errorf("Divergence: degree %d: %w", keys[i], ErrZeroSupportMismatch)
		}
	}
	return KLDivergence(pv, qv)
}
