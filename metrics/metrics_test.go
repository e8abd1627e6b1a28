package metrics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/metrics"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := metrics.NewRecorder()
	rec.ObserveBatch(5, 2, 1, 0, 10, 20)
	rec.ObserveBatch(3, 0, 0, 0, 10, 23)
	rec.ObserveDivergence(0.25, nil)
	rec.ObserveDivergence(0, errors.New("mismatch"))
	rec.ObserveStage("update", 3*time.Millisecond)

	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	require.Contains(t, names, "dyngraph_stage_duration_seconds")

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "dyngraph_batches_total 2")
	require.Contains(t, string(data), "dyngraph_edges_inserted_total 8")
	require.Contains(t, string(data), `dyngraph_batch_shortfall_total{kind="insertion"} 1`)
	require.Contains(t, string(data), "dyngraph_graph_size 23")
	require.Contains(t, string(data), "dyngraph_kl_divergence 0.25")
	require.Contains(t, string(data), "dyngraph_divergence_errors_total 1")
}

func TestHandler(t *testing.T) {
	t.Parallel()

	rec := metrics.NewRecorder()
	rec.ObserveBatch(1, 0, 0, 0, 2, 1)
	h := metrics.NewHandler(rec.Registry())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "dyngraph_edges_inserted_total 1")
}

func TestServe(t *testing.T) {
	t.Parallel()

	rec := metrics.NewRecorder()
	srv, err := metrics.Serve("127.0.0.1:0", rec, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
