// SPDX-License-Identifier: MIT
// Package: dyngraph/driver
//
// run.go - the Init → Load → Transform* → BatchLoop → Done state machine.

package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dyngraph/config"
	"github.com/katalvlaran/dyngraph/core"
	"github.com/katalvlaran/dyngraph/graphio"
	"github.com/katalvlaran/dyngraph/metrics"
	"github.com/katalvlaran/dyngraph/stats"
	"github.com/katalvlaran/dyngraph/transform"
	"github.com/katalvlaran/dyngraph/update"
)

// diameterSources caps the BFS sources used to estimate the diameter.
const diameterSources = 32

// BatchReport describes one loop iteration.
type BatchReport struct {
	Counter   int
	BatchSize int
	Requested update.Counts
	Shortfall update.Counts
	Result    core.BatchResult
	Order     int
	Size      int
	// Histogram is the out-degree distribution after the batch.
	Histogram *stats.Distribution
	// Diameter is set only when a max-diameter bound is configured.
	Diameter int
	// DegreeBelow and DegreeAbove count vertices outside min/max-degree.
	DegreeBelow int
	DegreeAbove int
	// Divergence is valid only when HasDivergence is true.
	Divergence    float64
	HasDivergence bool
	// Err holds a recoverable failure of this batch (apply or divergence).
	Err    error
	Output string
}

// Report is the outcome of a run.
type Report struct {
	RunID   string
	Seed    int64
	Batches []BatchReport
	Final   core.GraphStats
}

type run struct {
	plan    *config.Plan
	log     *slog.Logger
	console io.Writer
	rec     *metrics.Recorder

	rng     *rand.Rand
	g       *core.Graph
	sampler *update.Sampler
	sink    graphio.Sink
	report  *Report
}

// Run executes plan. A returned error is fatal; IsFatal classifies it.
func Run(plan *config.Plan, opts ...Option) (*Report, error) {
	cfg := newRunConfig(opts...)
	r := &run{plan: plan, console: cfg.console, rec: cfg.rec}

	if err := r.init(cfg.log); err != nil {
		return nil, err
	}
	if plan.MetricsAddr != "" {
		srv, err := metrics.Serve(plan.MetricsAddr, r.rec, r.log)
		if err != nil {
			return nil, fmt.Errorf("Run: metrics server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	if err := r.transform(); err != nil {
		return nil, err
	}
	if err := r.openSink(); err != nil {
		return nil, err
	}
	defer r.sink.Close()

	if err := r.loop(); err != nil {
		return r.report, err
	}
	return r.done()
}

func (r *run) init(log *slog.Logger) error {
	rng, seed, err := update.NewRNG(r.plan.Seed, r.plan.Seeded)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	sampler, err := update.NewSampler(r.plan.Sampler)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	r.rng, r.sampler = rng, sampler
	r.report = &Report{RunID: uuid.NewString(), Seed: seed}
	r.log = log.With("run", r.report.RunID)

	r.log.Info("run started",
		"seed", seed,
		"nature", r.plan.Sampler.Nature.String(),
		"distribution", r.plan.Sampler.Distribution.String(),
		"multi_batch", r.plan.MultiBatch)
	if len(r.plan.Reserved) > 0 {
		r.log.Warn("reserved options set; they do not affect sampling", "options", r.plan.Reserved)
	}
	return nil
}

func (r *run) load() error {
	start := time.Now()
	var gopts []core.GraphOption
	if r.plan.Sampler.AllowDuplicateEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g, err := graphio.Load(r.plan.InputFormat, r.plan.InputGraph, gopts...)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	r.g = g
	r.stage("read", start, "Read graph: %.3f seconds\n")
	r.log.Info("graph loaded", "path", r.plan.InputGraph, "order", g.Order(), "size", g.Size())
	return nil
}

func (r *run) transform() error {
	for _, k := range r.plan.Transforms {
		start := time.Now()
		g, err := transform.Apply(k, r.g)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}
		r.g = g
		r.stage("transform", start, "Perform transform %s: %.3f seconds\n", k)
	}
	return nil
}

func (r *run) openSink() error {
	switch r.plan.OutputFormat {
	case graphio.OutputBadger:
		s, err := graphio.OpenBadgerSink(graphio.BadgerPath(r.plan.OutputDir, r.plan.OutputPrefix), r.plan.OutputPrefix, r.plan.OutputWeighted)
		if err != nil {
			return fmt.Errorf("open sink: %w", err)
		}
		r.sink = s
	default:
		r.sink = &graphio.FileSink{Dir: r.plan.OutputDir, Prefix: r.plan.OutputPrefix, Weighted: r.plan.OutputWeighted}
	}
	return nil
}

func (r *run) loop() error {
	for counter := 1; counter <= r.plan.MultiBatch; counter++ {
		br, err := r.batch(counter)
		r.report.Batches = append(r.report.Batches, br)
		if err != nil {
			return err
		}
	}
	return nil
}

// batch runs one iteration. Only fatal errors are returned; recoverable
// ones are stored in the BatchReport.
func (r *run) batch(counter int) (BatchReport, error) {
	log := r.log.With("batch", counter)
	br := BatchReport{Counter: counter, BatchSize: r.plan.ResolveBatchSize(r.g.Size())}

	// Sample → Apply
	start := time.Now()
	s := r.sampler.WithBatchSize(br.BatchSize)
	b, err := s.Sample(r.g, r.rng)
	if err != nil {
		return br, fmt.Errorf("batch %d: %w", counter, err)
	}
	br.Requested, br.Shortfall = b.Requested, b.Shortfall()
	br.Result, err = update.Apply(r.g, b)
	if err != nil {
		br.Err = err
		log.Warn("batch rejected", "error", err)
	}
	br.Order, br.Size = r.g.Order(), r.g.Size()
	r.stage("update", start, "Perform batch update %d: %.3f seconds\n", counter)
	if br.Shortfall != (update.Counts{}) {
		log.Warn("batch shortfall",
			"insertions", br.Shortfall.Insertions,
			"deletions", br.Shortfall.Deletions)
	}

	// Analyze
	br.Histogram = stats.DegreeDistribution(r.g)
	r.printHistogram(br.Histogram)
	r.checkBounds(&br, log)

	// Validate: a KL value, or the reason it is undefined.
	if br.Err == nil {
		expected := stats.TargetDistribution(r.g, b.Target)
		br.Divergence, br.Err = stats.Divergence(expected, stats.InDegreeDistribution(r.g))
		br.HasDivergence = br.Err == nil
		r.rec.ObserveDivergence(br.Divergence, br.Err)
	}
	if br.HasDivergence {
		fmt.Fprintf(r.console, "KL Divergence: %g\n", br.Divergence)
	} else {
		fmt.Fprintf(r.console, "Error: %v\n", br.Err)
		log.Warn("divergence undefined", "error", br.Err)
	}

	// Write
	start = time.Now()
	out, err := r.sink.WriteSnapshot(counter, r.g)
	if err != nil {
		return br, fmt.Errorf("batch %d: %w", counter, err)
	}
	br.Output = out
	r.stage("write", start, "Write batch update %d: %.3f seconds\n", counter)

	r.rec.ObserveBatch(br.Result.Inserted, br.Result.Deleted,
		br.Shortfall.Insertions, br.Shortfall.Deletions, br.Order, br.Size)
	log.Info("batch done",
		"batch_size", br.BatchSize,
		"inserted", br.Result.Inserted,
		"deleted", br.Result.Deleted,
		"order", br.Order,
		"size", br.Size,
		"output", out)
	return br, nil
}

// checkBounds reports drift against the reserved degree and diameter knobs.
func (r *run) checkBounds(br *BatchReport, log *slog.Logger) {
	if r.plan.MinDegree > 0 || r.plan.MaxDegree > 0 {
		br.DegreeBelow, br.DegreeAbove = stats.DegreeBounds(r.g, r.plan.MinDegree, r.plan.MaxDegree)
		if br.DegreeBelow+br.DegreeAbove > 0 {
			log.Warn("degree bounds exceeded",
				"below_min", br.DegreeBelow, "above_max", br.DegreeAbove)
		}
	}
	if r.plan.MaxDiameter > 0 {
		br.Diameter = stats.Diameter(r.g, diameterSources)
		if br.Diameter > r.plan.MaxDiameter {
			log.Warn("diameter bound exceeded", "diameter", br.Diameter, "max", r.plan.MaxDiameter)
		}
	}
}

func (r *run) done() (*Report, error) {
	r.report.Final = r.g.Stats()
	if r.plan.MetricsFile != "" {
		if err := r.rec.WriteTextfile(r.plan.MetricsFile); err != nil {
			r.log.Warn("metrics dump failed", "error", err)
		}
	}
	r.log.Info("run finished", "batches", len(r.report.Batches),
		"order", r.report.Final.VertexCount, "size", r.report.Final.EdgeCount)
	return r.report, nil
}

// stage prints the elapsed time for a stage and records it. The format
// takes args followed by the elapsed seconds.
func (r *run) stage(name string, start time.Time, format string, args ...any) {
	d := time.Since(start)
	r.rec.ObserveStage(name, d)
	fmt.Fprintf(r.console, format, append(args, d.Seconds())...)
}

func (r *run) printHistogram(d *stats.Distribution) {
	fmt.Fprintln(r.console, "Degree Distribution:")
	d.Each(func(degree int, count float64) {
		fmt.Fprintf(r.console, "Degree %d: %g vertices\n", degree, count)
	})
}
