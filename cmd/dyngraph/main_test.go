package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "dyngraph dev\n", out)
}

func TestGenerateThenRun(t *testing.T) {
	dir := t.TempDir() + string(filepath.Separator)

	out, err := execute(t, "generate", "--topology", "path", "--vertices", "4", "--output-dir", dir, "--output-prefix", "seed")
	require.NoError(t, err)
	require.Equal(t, dir+"seed_1\n", out)

	cfg := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(strings.Join([]string{
		"input-graph: " + dir + "seed_1",
		"input-format: edgelist",
		"output-dir: " + dir,
		"output-prefix: prefix",
		"update-nature: preferential",
		"batch-size: 2",
		"edge-insertions: 1.0",
		"seed: 7",
	}, "\n")), 0o600))

	// The flag overrides the nature from the file.
	out, err = execute(t, "run", "--config", cfg, "--update-nature", "uniform", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "Perform batch update 1")

	data, err := os.ReadFile(filepath.Join(dir, "prefix_1"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "4 5\n"))
}

func TestRun_FatalConfig(t *testing.T) {
	_, err := execute(t, "run", "--input-graph", "x", "--input-format", "graphml", "--log-level", "error")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"graphml"`)
}

func TestGenerate_RandomStreams(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--vertices", "20", "--probability", "0.2", "--count", "2",
		"--output-dir", dir, "--output-weighted", "--max-weight", "9", "--log-level", "error")
	require.NoError(t, err)
	paths := strings.Fields(out)
	require.Len(t, paths, 2)

	a, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	b, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	require.NotEqual(t, string(a), string(b))
}
