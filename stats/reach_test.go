package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/builder"
	"github.com/katalvlaran/dyngraph/stats"
)

func TestDepthsAndDiameter(t *testing.T) {
	t.Parallel()

	path, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, map[int64]int{2: 0, 3: 1, 4: 2}, stats.Depths(path, 2))
	require.Empty(t, stats.Depths(path, 99))
	require.Equal(t, 4, stats.Eccentricity(path, 0))
	require.Equal(t, 4, stats.Diameter(path, 0))

	cycle, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	require.Equal(t, 5, stats.Diameter(cycle, 2))

	complete, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 1, stats.Diameter(complete, 0))
}

func TestDegreeBounds(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Star(6)) // hub 5, leaves 1
	require.NoError(t, err)
	below, above := stats.DegreeBounds(g, 2, 4)
	require.Equal(t, 5, below)
	require.Equal(t, 1, above)

	below, above = stats.DegreeBounds(g, 0, 0)
	require.Zero(t, below)
	require.Zero(t, above)
}
