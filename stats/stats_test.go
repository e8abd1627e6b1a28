package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/builder"
	"github.com/katalvlaran/dyngraph/core"
	"github.com/katalvlaran/dyngraph/stats"
)

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

func TestDistributions_Star(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)

	out := stats.DegreeDistribution(g)
	require.Equal(t, []int{0, 4}, out.Keys())
	require.Equal(t, 4.0, out.Get(0))
	require.Equal(t, 1.0, out.Get(4))

	in := stats.InDegreeDistribution(g)
	require.Equal(t, []int{0, 1}, in.Keys())
	require.Equal(t, 4.0, in.Get(1))

	und := stats.UndirectedDegreeDistribution(g)
	require.Equal(t, "1:4 4:1", und.String())
	require.Equal(t, 5.0, und.Total())
}

func TestToProbabilityVector(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	for _, d := range []*stats.Distribution{
		stats.DegreeDistribution(g),
		stats.InDegreeDistribution(g),
		stats.UndirectedDegreeDistribution(g),
	} {
		p := stats.ToProbabilityVector(d)
		require.Len(t, p, d.Len())
		require.InDelta(t, 1.0, sum(p), 1e-9)
	}

	empty := stats.ToProbabilityVector(stats.InDegreeDistribution(core.NewGraph()))
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestKLDivergence(t *testing.T) {
	t.Parallel()

	p := []float64{0.25, 0.25, 0.5}
	kl, err := stats.KLDivergence(p, p)
	require.NoError(t, err)
	require.Zero(t, kl)

	kl, err = stats.KLDivergence([]float64{0.5, 0.5}, []float64{0.25, 0.75})
	require.NoError(t, err)
	want := 0.5*math.Log(2) + 0.5*math.Log(0.5/0.75)
	require.InDelta(t, want, kl, 1e-12)
	require.Greater(t, kl, 0.0)

	// P = 0 where Q > 0 is fine; the shorter side is zero-filled.
	_, err = stats.KLDivergence([]float64{1}, []float64{0.5, 0.5})
	require.NoError(t, err)

	_, err = stats.KLDivergence([]float64{0.5, 0.5}, []float64{1})
	require.ErrorIs(t, err, stats.ErrZeroSupportMismatch)
	_, err = stats.KLDivergence([]float64{0.5, 0.5}, []float64{1, 0})
	require.ErrorIs(t, err, stats.ErrZeroSupportMismatch)

	kl, err = stats.KLDivergence(nil, nil)
	require.NoError(t, err)
	require.Zero(t, kl)
}

func TestAlignAndDivergence(t *testing.T) {
	t.Parallel()

	p := stats.NewDistribution()
	p.Add(1, 0.5)
	p.Add(3, 0.5)
	q := stats.NewDistribution()
	q.Add(0, 2)
	q.Add(1, 1)
	q.Add(3, 1)

	pv, qv, keys := stats.Align(p, q)
	require.Equal(t, []int{0, 1, 3}, keys)
	require.Equal(t, []float64{0, 0.5, 0.5}, pv)
	require.Equal(t, []float64{0.5, 0.25, 0.25}, qv)

	kl, err := stats.Divergence(p, q)
	require.NoError(t, err)
	require.InDelta(t, math.Log(2), kl, 1e-12)

	_, err = stats.Divergence(q, p)
	require.ErrorIs(t, err, stats.ErrZeroSupportMismatch)
	require.Contains(t, err.Error(), "degree 0")
}

func TestTargetDistribution(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(4)) // in-degrees 0,1,1,1
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3, 1)) // vertex 3 now in-degree 2

	d := stats.TargetDistribution(g, []stats.TargetWeight{
		{Vertex: 1, Weight: 0.25},
		{Vertex: 3, Weight: 0.5},
		{Vertex: 2, Weight: 0.25},
	})
	require.Equal(t, []int{1, 2}, d.Keys())
	require.InDelta(t, 0.5, d.Get(1), 1e-12)
	require.InDelta(t, 0.5, d.Get(2), 1e-12)

	require.Zero(t, stats.TargetDistribution(g, nil).Len())
}

func TestDivergence_EmptyTarget(t *testing.T) {
	t.Parallel()

	q := stats.NewDistribution()
	q.Add(1, 3)
	_, err := stats.Divergence(stats.NewDistribution(), q)
	require.ErrorIs(t, err, stats.ErrEmptyTarget)
	_, err = stats.Divergence(stats.TargetDistribution(core.NewGraph(), nil), q)
	require.ErrorIs(t, err, stats.ErrEmptyTarget)
}

func TestDivergence_TargetFromOtherStateMismatches(t *testing.T) {
	t.Parallel()

	before, err := builder.BuildGraph(nil, nil, builder.Path(4)) // in-degrees 0,1,1,1
	require.NoError(t, err)
	after := before.Clone()
	require.NoError(t, after.AddEdge(0, 3, 1)) // vertex 3 now in-degree 2

	target := []stats.TargetWeight{{Vertex: 3, Weight: 1}}
	kl, err := stats.Divergence(stats.TargetDistribution(after, target), stats.InDegreeDistribution(after))
	require.NoError(t, err)
	require.GreaterOrEqual(t, kl, 0.0)

	_, err = stats.Divergence(stats.TargetDistribution(after, target), stats.InDegreeDistribution(before))
	require.ErrorIs(t, err, stats.ErrZeroSupportMismatch)
	require.Contains(t, err.Error(), "degree 2")
}
