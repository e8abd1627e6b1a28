package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyngraph/builder"
	"github.com/katalvlaran/dyngraph/core"
	"github.com/katalvlaran/dyngraph/graphio"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"matrix-market", "edgelist", "snap-temporal"} {
		f, err := graphio.ParseFormat(name)
		require.NoError(t, err)
		require.Equal(t, name, f.String())
	}
	_, err := graphio.ParseFormat("graphml")
	require.ErrorIs(t, err, graphio.ErrUnknownInputFormat)

	of, err := graphio.ParseOutputFormat("")
	require.NoError(t, err)
	require.Equal(t, graphio.OutputEdgeList, of)
	_, err = graphio.ParseOutputFormat("csv")
	require.ErrorIs(t, err, graphio.ErrUnknownOutputFormat)
}

func TestReadMatrixMarket(t *testing.T) {
	t.Parallel()

	const src = `%%MatrixMarket matrix coordinate real symmetric
% comment
4 4 3
2 1 1.6
3 3 2
4 2 7
`
	g, err := graphio.Read(graphio.FormatMatrixMarket, strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.Equal(t, 5, g.Size())
	w, err := g.EdgeWeight(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), w)
	require.True(t, g.HasEdge(3, 3))
	require.True(t, g.HasEdge(2, 4))
}

func TestReadMatrixMarket_PatternGeneral(t *testing.T) {
	t.Parallel()

	const src = "%%MatrixMarket matrix coordinate pattern general\n3 3 2\n1 2\n2 3\n"
	g, err := graphio.Read(graphio.FormatMatrixMarket, strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1}}, g.Edges())
}

func TestReadMatrixMarket_Malformed(t *testing.T) {
	t.Parallel()

	for name, src := range map[string]string{
		"banner":  "%%MatrixMarket matrix array real general\n2 2\n",
		"count":   "%%MatrixMarket matrix coordinate integer general\n2 2 2\n1 2 1\n",
		"range":   "%%MatrixMarket matrix coordinate integer general\n2 2 1\n1 3 1\n",
		"noweigh": "%%MatrixMarket matrix coordinate integer general\n2 2 1\n1 2\n",
	} {
		_, err := graphio.Read(graphio.FormatMatrixMarket, strings.NewReader(src))
		require.ErrorIs(t, err, graphio.ErrMalformedInput, name)
	}
}

func TestEdgeList_RoundTrip(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithUniformWeight(1, 9)},
		builder.RandomSparse(12, 0.2))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(12, 0)) // isolated

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteEdgeList(&buf, g, true))

	back, err := graphio.Read(graphio.FormatEdgeList, &buf)
	require.NoError(t, err)
	require.Equal(t, g.Order(), back.Order())
	require.Equal(t, g.Edges(), back.Edges())
}

func TestWriteEdgeList_Format(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteEdgeList(&buf, g, false))
	require.Equal(t, "3 2\n0 1\n1 2\n", buf.String())
}

func TestReadEdgeList_Malformed(t *testing.T) {
	t.Parallel()

	for name, src := range map[string]string{
		"noheader": "0 1 2 3\n",
		"count":    "2 2\n0 1\n",
		"order":    "1 1\n0 1\n",
		"token":    "2 1\n0 x\n",
	} {
		_, err := graphio.Read(graphio.FormatEdgeList, strings.NewReader(src))
		require.ErrorIs(t, err, graphio.ErrMalformedInput, name)
	}
}

func TestReadSnapTemporal(t *testing.T) {
	t.Parallel()

	const src = "# u v t\n3 1 30\n1 2 10\n1 2 20\n2 3 10\n"
	g, err := graphio.Read(graphio.FormatSnapTemporal, strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size(), "repeated pair collapses")

	multi, err := graphio.Read(graphio.FormatSnapTemporal, strings.NewReader(src), core.WithMultiEdges())
	require.NoError(t, err)
	require.Equal(t, 4, multi.Size())
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := graphio.Load(graphio.FormatEdgeList, filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, graphio.ErrInputFileNotFound)
}

func TestLoad_Unreadable(t *testing.T) {
	t.Parallel()

	// A regular file used as a directory fails with ENOTDIR, not ENOENT,
	// and still classifies as an input failure (even when running as root).
	file := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(file, []byte("1 0\n"), 0o600))
	_, err := graphio.Load(graphio.FormatEdgeList, filepath.Join(file, "child"))
	require.ErrorIs(t, err, graphio.ErrInputFileNotFound)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "out/run_3", graphio.OutputPath("out/", "run", 3))
	require.Equal(t, filepath.Join("out", "run_3"), graphio.OutputPath("out", "run", 3))
	require.Equal(t, "run_1", graphio.OutputPath("", "run", 1))
	require.Equal(t, filepath.Join("out", "run.badger"), graphio.BadgerPath("out", "run"))
}

func TestFileSink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	sink := &graphio.FileSink{Dir: dir, Prefix: "snap", Weighted: true}
	path, err := sink.WriteSnapshot(1, g)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "snap_1"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "3 3\n0 1 1\n1 2 1\n2 0 1\n", string(data))

	bad := &graphio.FileSink{Dir: filepath.Join(dir, "missing"), Prefix: "snap"}
	_, err = bad.WriteSnapshot(1, g)
	require.ErrorIs(t, err, graphio.ErrOutputFileCreateFailed)
}

func TestBadgerSink(t *testing.T) {
	t.Parallel()

	sink, err := graphio.OpenBadgerSink("", "snap", false)
	require.NoError(t, err)
	defer sink.Close()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	key, err := sink.WriteSnapshot(1, g)
	require.NoError(t, err)
	require.Equal(t, "snap_1", key)

	require.NoError(t, g.AddEdge(2, 0, 1))
	_, err = sink.WriteSnapshot(2, g)
	require.NoError(t, err)

	data, err := sink.ReadSnapshot("snap_2")
	require.NoError(t, err)
	require.Equal(t, "3 3\n0 1\n1 2\n2 0\n", string(data))

	keys, err := sink.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"snap_1", "snap_2"}, keys)
}
