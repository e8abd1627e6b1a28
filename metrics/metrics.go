// Package metrics records batch-pipeline counters on a private prometheus
// registry and exposes them as a textfile dump or over HTTP.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns one registry per run so parallel tests never collide on
// the global default registry.
type Recorder struct {
	reg *prometheus.Registry

	batches          prometheus.Counter
	edgesInserted    prometheus.Counter
	edgesDeleted     prometheus.Counter
	shortfall        *prometheus.CounterVec
	divergenceErrors prometheus.Counter
	graphOrder       prometheus.Gauge
	graphSize        prometheus.Gauge
	divergence       prometheus.Gauge
	stageDuration    *prometheus.HistogramVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		batches: f.NewCounter(prometheus.CounterOpts{
			Name: "dyngraph_batches_total",
			Help: "Total number of batches applied.",
		}),
		edgesInserted: f.NewCounter(prometheus.CounterOpts{
			Name: "dyngraph_edges_inserted_total",
			Help: "Total number of edges inserted across all batches.",
		}),
		edgesDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "dyngraph_edges_deleted_total",
			Help: "Total number of edges deleted across all batches.",
		}),
		shortfall: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dyngraph_batch_shortfall_total",
			Help: "Requested updates the sampler could not produce, labelled by kind.",
		}, []string{"kind"}),
		divergenceErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "dyngraph_divergence_errors_total",
			Help: "Batches whose KL divergence could not be computed.",
		}),
		graphOrder: f.NewGauge(prometheus.GaugeOpts{
			Name: "dyngraph_graph_order",
			Help: "Vertex count after the latest batch.",
		}),
		graphSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "dyngraph_graph_size",
			Help: "Edge count after the latest batch.",
		}),
		divergence: f.NewGauge(prometheus.GaugeOpts{
			Name: "dyngraph_kl_divergence",
			Help: "KL divergence of the latest batch with a defined value.",
		}),
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dyngraph_stage_duration_seconds",
			Help:    "Wall time per pipeline stage.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"stage"}),
	}
}

// Registry exposes the underlying registry for HTTP handlers and tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveStage records the duration of one stage ("read", "transform", "update", "write", ...).
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	r.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveBatch records one applied batch and the graph shape after it.
func (r *Recorder) ObserveBatch(inserted, deleted, shortIns, shortDel, order, size int) {
	r.batches.Inc()
	r.edgesInserted.Add(float64(inserted))
	r.edgesDeleted.Add(float64(deleted))
	if shortIns > 0 {
		r.shortfall.WithLabelValues("insertion").Add(float64(shortIns))
	}
	if shortDel > 0 {
		r.shortfall.WithLabelValues("deletion").Add(float64(shortDel))
	}
	r.graphOrder.Set(float64(order))
	r.graphSize.Set(float64(size))
}

// ObserveDivergence records a KL value, or counts a failure when err != nil.
func (r *Recorder) ObserveDivergence(kl float64, err error) {
	if err != nil {
		r.divergenceErrors.Inc()
		return
	}
	r.divergence.Set(kl)
}

// WriteTextfile dumps the registry in the text exposition format, e.g. for
// the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
