// Package config holds the run options of the batch-update generator, loads
// them from YAML and resolves them into a validated Plan.
package config

// Options is the raw, user-facing option set. Field names follow the
// command-line flag names.
type Options struct {
	InputGraph     string   `yaml:"input-graph"`
	InputFormat    string   `yaml:"input-format"`
	InputTransform []string `yaml:"input-transform"`

	OutputDir      string `yaml:"output-dir"`
	OutputPrefix   string `yaml:"output-prefix"`
	OutputFormat   string `yaml:"output-format"`
	OutputWeighted bool   `yaml:"output-weighted"`

	BatchSize           int64   `yaml:"batch-size"`
	BatchSizeRatio      float64 `yaml:"batch-size-ratio"`
	EdgeInsertions      float64 `yaml:"edge-insertions"`
	EdgeDeletions       float64 `yaml:"edge-deletions"`
	AllowDuplicateEdges bool    `yaml:"allow-duplicate-edges"`

	// Vertex-level and structure-preservation knobs are accepted and
	// reported but do not change sampling.
	VertexInsertions           float64 `yaml:"vertex-insertions"`
	VertexDeletions            float64 `yaml:"vertex-deletions"`
	VertexGrowthRate           float64 `yaml:"vertex-growth-rate"`
	AllowDuplicateVertices     bool    `yaml:"allow-duplicate-vertices"`
	MinDegree                  int64   `yaml:"min-degree"`
	MaxDegree                  int64   `yaml:"max-degree"`
	MaxDiameter                int64   `yaml:"max-diameter"`
	PreserveDegreeDistribution bool    `yaml:"preserve-degree-distribution"`
	PreserveCommunities        bool    `yaml:"preserve-communities"`
	PreserveKCore              int64   `yaml:"preserve-k-core"`

	ProbabilityDistribution string `yaml:"probability-distribution"`
	UpdateNature            string `yaml:"update-nature"`

	MultiBatch int64 `yaml:"multi-batch"`
	// Seed is nil when the run should draw its seed from OS entropy.
	Seed *int64 `yaml:"seed"`

	MetricsFile string `yaml:"metrics-file"`
	MetricsAddr string `yaml:"metrics-addr"`
	LogLevel    string `yaml:"log-level"`
}

// Default returns the options used when neither file nor flag sets a value.
func Default() Options {
	return Options{
		OutputFormat: "edgelist",
		MultiBatch:   1,
		LogLevel:     "info",
	}
}

// ReservedSet lists the reserved knobs that carry a non-zero value.
func (o Options) ReservedSet() []string {
	var set []string
	add := func(name string, on bool) {
		if on {
			set = append(set, name)
		}
	}
	add("vertex-insertions", o.VertexInsertions != 0)
	add("vertex-deletions", o.VertexDeletions != 0)
	add("vertex-growth-rate", o.VertexGrowthRate != 0)
	add("allow-duplicate-vertices", o.AllowDuplicateVertices)
	add("min-degree", o.MinDegree != 0)
	add("max-degree", o.MaxDegree != 0)
	add("max-diameter", o.MaxDiameter != 0)
	add("preserve-degree-distribution", o.PreserveDegreeDistribution)
	add("preserve-communities", o.PreserveCommunities)
	add("preserve-k-core", o.PreserveKCore != 0)
	return set
}
