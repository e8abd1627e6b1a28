package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/builder"
	"github.com/katalvlaran/dyngraph/core"
)

func edgeSet(g *core.Graph) map[core.EdgeKey]int64 {
	m := make(map[core.EdgeKey]int64)
	for _, e := range g.Edges() {
		m[e.Key()] = e.Weight
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				edges := edgeSet(g)
				for i := int64(0); i < 5; i++ {
					w, ok := edges[core.EdgeKey{From: i, To: (i + 1) % 5}]
					require.True(t, ok)
					require.Equal(t, core.DefaultEdgeWeight, w)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				in, out, err := g.Degree(0)
				require.NoError(t, err)
				require.Equal(t, 0, in)
				require.Equal(t, 1, out)
				require.False(t, g.HasEdge(1, 0))
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 5, g.OutDegree(0))
				require.Equal(t, 0, g.InDegree(0))
				for leaf := int64(1); leaf < 6; leaf++ {
					require.Equal(t, 1, g.InDegree(leaf))
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			check: func(t *testing.T, g *core.Graph) {
				for u := int64(0); u < 4; u++ {
					require.False(t, g.HasEdge(u, u))
					require.Equal(t, 3, g.OutDegree(u))
				}
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1.0), wantV: 5, wantE: 20,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0.0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Order())
			require.Equal(t, tc.wantE, g.Size())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(3, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(3, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.1))
		require.NoError(t, err)
		return g
	}
	require.Equal(t, build().Edges(), build().Edges())
}

func TestBuilders_IDOffsetAndWeights(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDOffset(1), builder.WithConstantWeight(7)},
		builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, g.Vertices())
	w, err := g.EdgeWeight(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), w)
}

func TestApply_LayersOntoExisting(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	// Second Path over the same IDs hits the simple-graph policy.
	err = builder.Apply(g, nil, builder.Path(3))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	g2, err := builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g2, nil, builder.Path(3)))
	require.Equal(t, 4, g2.Size())
}
