// SPDX-License-Identifier: MIT
// Package: dyngraph/config
//
// resolve.go - validation and enum parsing, done once before the run starts.

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/dyngraph/graphio"
	"github.com/katalvlaran/dyngraph/transform"
	"github.com/katalvlaran/dyngraph/update"
)

// ErrInvalidOption reports an out-of-range or missing option value.
var ErrInvalidOption = errors.New("config: invalid option")

// Plan is the resolved, validated form of Options.
type Plan struct {
	InputGraph  string
	InputFormat graphio.Format
	Transforms  []transform.Kind

	OutputDir      string
	OutputPrefix   string
	OutputFormat   graphio.OutputFormat
	OutputWeighted bool

	// BatchSize is used as is when positive; otherwise the batch size is
	// round(Size() * BatchSizeRatio), recomputed every batch.
	BatchSize      int
	BatchSizeRatio float64
	Sampler        update.SamplerConfig

	MultiBatch int
	Seed       int64
	Seeded     bool

	// Reserved lists reserved options that are set. Degree and diameter
	// bounds are checked and reported after each batch, never enforced.
	Reserved    []string
	MinDegree   int
	MaxDegree   int
	MaxDiameter int

	MetricsFile string
	MetricsAddr string
	LogLevel    slog.Level
}

// FixedBatchSize reports whether BatchSize overrides the ratio.
func (p *Plan) FixedBatchSize() bool { return p.BatchSize > 0 }

// ResolveBatchSize returns the batch size for a graph with the given edge count.
func (p *Plan) ResolveBatchSize(size int) int {
	if p.FixedBatchSize() {
		return p.BatchSize
	}
	return int(math.Round(float64(size) * p.BatchSizeRatio))
}

// Resolve validates opts and parses every enum. All problems are reported
// together; each one wraps its own sentinel so callers can use errors.Is.
func Resolve(opts Options) (*Plan, error) {
	var errs []error
	fail := func(err error) { errs = append(errs, err) }
	invalid := func(format string, args ...any) {
		fail(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidOption))
	}

	p := &Plan{
		InputGraph:     opts.InputGraph,
		OutputDir:      opts.OutputDir,
		OutputPrefix:   opts.OutputPrefix,
		OutputWeighted: opts.OutputWeighted,
		BatchSize:      int(opts.BatchSize),
		BatchSizeRatio: opts.BatchSizeRatio,
		MultiBatch:     int(opts.MultiBatch),
		Reserved:       opts.ReservedSet(),
		MinDegree:      int(opts.MinDegree),
		MaxDegree:      int(opts.MaxDegree),
		MaxDiameter:    int(opts.MaxDiameter),
		MetricsFile:    opts.MetricsFile,
		MetricsAddr:    opts.MetricsAddr,
	}
	if opts.Seed != nil {
		p.Seed, p.Seeded = *opts.Seed, true
	}

	if opts.InputGraph == "" {
		invalid("input-graph is required")
	}
	var err error
	if p.InputFormat, err = graphio.ParseFormat(opts.InputFormat); err != nil {
		fail(err)
	}
	if p.OutputFormat, err = graphio.ParseOutputFormat(opts.OutputFormat); err != nil {
		fail(err)
	}
	if p.Transforms, err = transform.ParseList(opts.InputTransform); err != nil {
		fail(err)
	}

	nature, err := update.ParseNature(opts.UpdateNature)
	if err != nil {
		fail(err)
	}
	dist, err := update.ParseDistribution(opts.ProbabilityDistribution)
	if err != nil {
		fail(err)
	}
	p.Sampler = update.SamplerConfig{
		Nature:              nature,
		Distribution:        dist,
		EdgeInsertions:      opts.EdgeInsertions,
		EdgeDeletions:       opts.EdgeDeletions,
		AllowDuplicateEdges: opts.AllowDuplicateEdges,
	}

	switch {
	case opts.BatchSize < 0:
		invalid("batch-size %d < 0", opts.BatchSize)
	case opts.BatchSizeRatio < 0 || math.IsNaN(opts.BatchSizeRatio):
		invalid("batch-size-ratio %g < 0", opts.BatchSizeRatio)
	}
	if opts.EdgeInsertions < 0 || math.IsNaN(opts.EdgeInsertions) {
		invalid("edge-insertions %g < 0", opts.EdgeInsertions)
	}
	if opts.EdgeDeletions < 0 || math.IsNaN(opts.EdgeDeletions) {
		invalid("edge-deletions %g < 0", opts.EdgeDeletions)
	}
	if opts.MultiBatch < 1 {
		invalid("multi-batch %d < 1", opts.MultiBatch)
	}
	if p.LogLevel, err = ParseLogLevel(opts.LogLevel); err != nil {
		fail(err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return p, nil
}

// ParseLogLevel accepts debug, info, warn and error; empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log-level %q: %w", s, ErrInvalidOption)
	}
	return lvl, nil
}
