package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/dyngraph/config"
	"github.com/katalvlaran/dyngraph/driver"
)

func newRunCmd() *cobra.Command {
	o := config.Default()
	var (
		cfgPath string
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a graph and apply batches of sampled edge updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			if cfgPath != "" {
				base, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				overlay(fs, &o, base)
			}
			if fs.Changed("seed") {
				o.Seed = &seed
			}
			if fs.Changed("log-level") {
				o.LogLevel, _ = fs.GetString("log-level")
			}

			plan, err := config.Resolve(o)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: plan.LogLevel})))
			rep, err := driver.Run(plan, driver.WithLogger(slog.Default()), driver.WithConsole(cmd.OutOrStdout()))
			if err != nil {
				if driver.IsFatal(err) {
					return fmt.Errorf("fatal: %w", err)
				}
				return err
			}
			slog.Debug("report", "run", rep.RunID, "batches", len(rep.Batches))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "YAML options file; flags set on the command line override it")
	f.StringVar(&o.InputGraph, "input-graph", o.InputGraph, "Input graph file")
	f.StringVar(&o.InputFormat, "input-format", o.InputFormat, "Input format: matrix-market, edgelist, snap-temporal")
	f.StringSliceVar(&o.InputTransform, "input-transform", o.InputTransform,
		"Transforms applied in order: transpose, symmetrize, unsymmetrize, loop-deadends, loop-vertices, clear-weights, set-weights")
	f.StringVar(&o.OutputDir, "output-dir", o.OutputDir, "Output directory")
	f.StringVar(&o.OutputPrefix, "output-prefix", o.OutputPrefix, "Snapshot name prefix")
	f.StringVar(&o.OutputFormat, "output-format", o.OutputFormat, "Output format: edgelist, badger")
	f.BoolVar(&o.OutputWeighted, "output-weighted", o.OutputWeighted, "Write edge weights")
	f.Int64Var(&o.BatchSize, "batch-size", o.BatchSize, "Updates per batch; 0 uses --batch-size-ratio")
	f.Float64Var(&o.BatchSizeRatio, "batch-size-ratio", o.BatchSizeRatio, "Batch size as a fraction of the current edge count")
	f.Float64Var(&o.EdgeInsertions, "edge-insertions", o.EdgeInsertions, "Insertions as a fraction of the batch size")
	f.Float64Var(&o.EdgeDeletions, "edge-deletions", o.EdgeDeletions, "Deletions as a fraction of the batch size")
	f.BoolVar(&o.AllowDuplicateEdges, "allow-duplicate-edges", o.AllowDuplicateEdges, "Allow parallel edges")
	f.Float64Var(&o.VertexInsertions, "vertex-insertions", o.VertexInsertions, "Reserved")
	f.Float64Var(&o.VertexDeletions, "vertex-deletions", o.VertexDeletions, "Reserved")
	f.Float64Var(&o.VertexGrowthRate, "vertex-growth-rate", o.VertexGrowthRate, "Reserved")
	f.BoolVar(&o.AllowDuplicateVertices, "allow-duplicate-vertices", o.AllowDuplicateVertices, "Reserved")
	f.StringVar(&o.ProbabilityDistribution, "probability-distribution", o.ProbabilityDistribution,
		"Target distribution of the custom nature: uniform, degree, in-degree, out-degree")
	f.StringVar(&o.UpdateNature, "update-nature", o.UpdateNature, "Update nature: \"\" (custom), uniform, preferential, planted, match")
	f.Int64Var(&o.MinDegree, "min-degree", o.MinDegree, "Reserved")
	f.Int64Var(&o.MaxDegree, "max-degree", o.MaxDegree, "Reserved")
	f.Int64Var(&o.MaxDiameter, "max-diameter", o.MaxDiameter, "Reserved")
	f.BoolVar(&o.PreserveDegreeDistribution, "preserve-degree-distribution", o.PreserveDegreeDistribution, "Reserved")
	f.BoolVar(&o.PreserveCommunities, "preserve-communities", o.PreserveCommunities, "Reserved")
	f.Int64Var(&o.PreserveKCore, "preserve-k-core", o.PreserveKCore, "Reserved")
	f.Int64Var(&o.MultiBatch, "multi-batch", o.MultiBatch, "Number of batches")
	f.Int64Var(&seed, "seed", 0, "RNG seed; OS entropy when unset")
	f.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "Write prometheus metrics to this file at the end of the run")
	f.StringVar(&o.MetricsAddr, "metrics-addr", o.MetricsAddr, "Serve /metrics and /healthz on this address during the run")

	return cmd
}

// overlay replaces *o with base and then re-applies every flag the user set
// explicitly, so command-line values win over the file.
func overlay(fs *pflag.FlagSet, o *config.Options, base config.Options) {
	scalars := map[string]string{}
	slices := map[string][]string{}
	fs.Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			slices[f.Name] = sv.GetSlice()
			return
		}
		scalars[f.Name] = f.Value.String()
	})

	*o = base
	for name, v := range scalars {
		_ = fs.Lookup(name).Value.Set(v)
	}
	for name, v := range slices {
		_ = fs.Lookup(name).Value.(pflag.SliceValue).Replace(v)
	}
}
