package driver

import (
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/dyngraph/metrics"
)

// Option customizes a Run.
type Option func(*runConfig)

type runConfig struct {
	log     *slog.Logger
	console io.Writer
	rec     *metrics.Recorder
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		log:     slog.Default(),
		console: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rec == nil {
		cfg.rec = metrics.NewRecorder()
	}
	return cfg
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("driver: WithLogger(nil)")
	}
	return func(c *runConfig) { c.log = l }
}

// WithConsole sets where the human-readable report is printed.
func WithConsole(w io.Writer) Option {
	if w == nil {
		w = io.Discard
	}
	return func(c *runConfig) { c.console = w }
}

// WithRecorder shares a metrics recorder with the caller.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *runConfig) { c.rec = r }
}
