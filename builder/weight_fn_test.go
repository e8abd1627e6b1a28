package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/core"
)

func TestConstantWeightFn(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(9), ConstantWeightFn(9)(nil))
	require.Panics(t, func() { ConstantWeightFn(-1) })
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()

	fn := UniformWeightFn(3, 6)
	require.Equal(t, core.DefaultEdgeWeight, fn(nil))

	r := rand.New(rand.NewSource(7))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(r)
		require.GreaterOrEqual(t, w, int64(3))
		require.LessOrEqual(t, w, int64(6))
		seen[w] = true
	}
	require.Len(t, seen, 4)

	require.Equal(t, int64(4), UniformWeightFn(4, 4)(r))
	require.Panics(t, func() { UniformWeightFn(5, 2) })
}
