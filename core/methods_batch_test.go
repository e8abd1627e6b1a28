package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/core"
)

func pathGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	return g
}

func TestApplyBatch_SizeDelta(t *testing.T) {
	g := pathGraph(t)
	res, err := g.ApplyBatch(
		[]core.EdgeKey{{From: 0, To: 1}, {From: 3, To: 0}}, // second one is absent
		[]core.Edge{{From: 3, To: 0}, {From: 0, To: 2, Weight: 9}},
	)
	require.NoError(t, err)
	require.Equal(t, core.BatchResult{Deleted: 1, Inserted: 2}, res)
	require.Equal(t, 1, res.SizeDelta())
	require.Equal(t, 4, g.Size())
	require.Equal(t, 4, g.Order())

	w, err := g.EdgeWeight(3, 0)
	require.NoError(t, err)
	require.Equal(t, core.DefaultEdgeWeight, w, "zero weight defaults")
}

func TestApplyBatch_RejectsWholeBatch(t *testing.T) {
	g := pathGraph(t)
	before := g.Edges()

	_, err := g.ApplyBatch(
		[]core.EdgeKey{{From: 1, To: 2}},
		[]core.Edge{{From: 3, To: 1}, {From: 2, To: 3}},
	)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.Equal(t, before, g.Edges(), "nothing applied")

	_, err = g.ApplyBatch(nil, []core.Edge{{From: 0, To: 0}})
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.ApplyBatch(nil, []core.Edge{{From: 0, To: 3}, {From: 0, To: 3}})
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "duplicate inside batch")
	require.Equal(t, before, g.Edges())
}

func TestApplyBatch_ReinsertDeletedPair(t *testing.T) {
	g := pathGraph(t)
	res, err := g.ApplyBatch([]core.EdgeKey{{From: 0, To: 1}}, []core.Edge{{From: 0, To: 1, Weight: 4}})
	require.NoError(t, err)
	require.Equal(t, 0, res.SizeDelta())
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), w)
}

func TestApplyBatch_CreatesEndpoints(t *testing.T) {
	g := pathGraph(t)
	_, err := g.ApplyBatch(nil, []core.Edge{{From: 10, To: 11}})
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
}

// TestApplyBatch_ReadersSeeWholeBatches checks that concurrent readers only
// observe sizes that exist before or after each batch.
func TestApplyBatch_ReadersSeeWholeBatches(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex(0, 0))

	const rounds = 100
	var wg sync.WaitGroup
	sizes := make(chan int, rounds*4)

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = g.ApplyBatch(nil, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			sizes <- g.Size()
		}
	}()
	wg.Wait()
	close(sizes)

	for s := range sizes {
		require.Equal(t, 0, s%2, "partial batch observed")
	}
	require.Equal(t, 2*rounds, g.Size())
}
