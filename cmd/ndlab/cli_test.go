package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ndlab "+version+"\n", out)
}

func TestBroadcastCommand(t *testing.T) {
	out, err := execute(t, "broadcast")
	require.NoError(t, err)

	assert.Contains(t, out, "BROADCASTING CASES")
	assert.Contains(t, out, "A + row_vec:\n[[11 22 33]\n [14 25 36]]\nshape: (2, 3)  ndim: 2")
	assert.Contains(t, out, "incompatible vector: error: A + B: operands could not be broadcast together")
}

func TestAxesCommand(t *testing.T) {
	out, err := execute(t, "axes")
	require.NoError(t, err)
	assert.Contains(t, out, "sum (axis=0):\n[111 222 333 444]\nshape: (4,)  ndim: 1")
}

func TestSimulateWritesCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := execute(t, "simulate", "--trials", "20", "--flips", "10", "--bins", "5", "--seed", "3", "--chart-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "trials: 20")
	assert.FileExists(t, filepath.Join(dir, "estimate_histogram.png"))
	assert.FileExists(t, filepath.Join(dir, "running_probability.png"))
}

func TestSimulateReproducible(t *testing.T) {
	a, err := execute(t, "simulate", "--trials", "30", "--flips", "10", "--seed", "9")
	require.NoError(t, err)
	b, err := execute(t, "simulate", "--trials", "30", "--flips", "10", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "simulate", "--bins", "0")
	assert.Error(t, err)

	_, err = execute(t, "nope")
	assert.Error(t, err)

	_, err = execute(t, "shapes", "extra")
	assert.Error(t, err)
}

func TestEnvCommand(t *testing.T) {
	out, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "NDLAB_SEED")
	assert.Contains(t, out, "NDLAB_CHART_DIR")
}

func TestAllCommand(t *testing.T) {
	out, err := execute(t, "all", "--trials", "10", "--flips", "10")
	require.NoError(t, err)
	for _, title := range []string{"SHAPE EXPERIMENTS", "AXIS TESTS", "BROADCASTING CASES", "STATISTICAL SIMULATION"} {
		assert.Contains(t, out, title)
	}
	_, statErr := os.Stat("estimate_histogram.png")
	assert.True(t, os.IsNotExist(statErr), "no charts without --chart-dir")
}
