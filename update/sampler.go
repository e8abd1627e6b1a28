// SPDX-License-Identifier: MIT
// Package: dyngraph/update
//
// sampler.go - Sampler configuration, rounding policy and nature dispatch.

package update

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/dyngraph/core"
)

const (
	// PreferentialSmoothing is added to every vertex degree so that isolated
	// vertices can still be chosen by the preferential nature.
	PreferentialSmoothing = 1.0

	// attemptsPerEdge and minAttempts bound rejection sampling per batch.
	attemptsPerEdge = 32
	minAttempts     = 64
)

// SamplerConfig is resolved once from configuration and reused for every batch.
type SamplerConfig struct {
	Nature              Nature
	Distribution        Distribution
	BatchSize           int
	EdgeInsertions      float64
	EdgeDeletions       float64
	AllowDuplicateEdges bool
}

// Sampler draws batches for one configured nature. It holds no graph or RNG state.
type Sampler struct {
	cfg SamplerConfig
}

// NewSampler validates cfg and returns a Sampler.
func NewSampler(cfg SamplerConfig) (*Sampler, error) {
	switch {
	case cfg.BatchSize < 0:
		return nil, fmt.Errorf("NewSampler: batch size %d: %w", cfg.BatchSize, ErrInvalidSamplerConfig)
	case cfg.EdgeInsertions < 0 || math.IsNaN(cfg.EdgeInsertions):
		return nil, fmt.Errorf("NewSampler: edge insertions %g: %w", cfg.EdgeInsertions, ErrInvalidSamplerConfig)
	case cfg.EdgeDeletions < 0 || math.IsNaN(cfg.EdgeDeletions):
		return nil, fmt.Errorf("NewSampler: edge deletions %g: %w", cfg.EdgeDeletions, ErrInvalidSamplerConfig)
	}
	if _, ok := natureNames[cfg.Nature]; !ok {
		return nil, fmt.Errorf("NewSampler: %v: %w", cfg.Nature, ErrUnknownUpdateNature)
	}
	if _, ok := distributionNames[cfg.Distribution]; !ok {
		return nil, fmt.Errorf("NewSampler: %v: %w", cfg.Distribution, ErrUnknownDistribution)
	}
	return &Sampler{cfg: cfg}, nil
}

// Config returns a copy of the sampler configuration.
func (s *Sampler) Config() SamplerConfig { return s.cfg }

// WithBatchSize returns a copy of s targeting n updates per batch.
func (s *Sampler) WithBatchSize(n int) *Sampler {
	c := *s
	if n < 0 {
		n = 0
	}
	c.cfg.BatchSize = n
	return &c
}

// Counts returns the requested deletion and insertion counts:
// math.Round(BatchSize*fraction), rounding half away from zero.
func (s *Sampler) Counts() Counts {
	bs := float64(s.cfg.BatchSize)
	return Counts{
		Deletions:  int(math.Round(bs * s.cfg.EdgeDeletions)),
		Insertions: int(math.Round(bs * s.cfg.EdgeInsertions)),
	}
}

// Sample draws one batch from the current state of g. g is only read.
func (s *Sampler) Sample(g *core.Graph, rng *rand.Rand) (*Batch, error) {
	if g == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilGraph)
	}
	if rng == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilRand)
	}

	b := &Batch{Requested: s.Counts()}
	switch s.cfg.Nature {
	case NatureCustom:
		s.sampleCustom(takeSnapshot(g), rng, b)
	case NatureUniform:
		s.sampleUniform(takeSnapshot(g), rng, b)
	case NaturePreferential:
		s.samplePreferential(takeSnapshot(g), rng, b)
	case NaturePlanted, NatureMatch:
		// Reserved: same shape, nothing drawn.
	default:
		return nil, fmt.Errorf("Sample: %v: %w", s.cfg.Nature, ErrUnknownUpdateNature)
	}

	return b, nil
}

// Apply applies b to g atomically: deletions first, then insertions.
func Apply(g *core.Graph, b *Batch) (core.BatchResult, error) {
	if g == nil {
		return core.BatchResult{}, fmt.Errorf("Apply: %w", ErrNilGraph)
	}
	if b == nil {
		return core.BatchResult{}, nil
	}
	res, err := g.ApplyBatch(b.Deletions, b.Insertions)
	if err != nil {
		return res, fmt.Errorf("Apply: %w", err)
	}
	return res, nil
}
