package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/core"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Equal(t, int64(7), cfg.idFn(7))
	require.Nil(t, cfg.rng)
	require.Equal(t, core.DefaultEdgeWeight, cfg.weightFn(nil))
}

func TestBuilderConfig_LaterOptionsOverride(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithIDOffset(10), WithIDOffset(100), WithSeed(5), WithRand(r))
	require.Equal(t, int64(103), cfg.idFn(3))
	require.Same(t, r, cfg.rng)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithWeightFn(nil) })
}
