package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestChartsHistogram(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	c := NewCharts(dir)

	path, err := c.Histogram(HistogramChart{
		Name:     "estimates",
		Title:    "Distribution of Estimated Head Probability",
		XLabel:   "Estimated Probability",
		YLabel:   "Frequency",
		Dividers: []float64{0.3, 0.4, 0.5, 0.6, 0.7},
		Counts:   []float64{2, 10, 12, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "estimates.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestChartsHistogramMismatch(t *testing.T) {
	c := NewCharts(t.TempDir())
	_, err := c.Histogram(HistogramChart{Name: "bad", Dividers: []float64{0, 1}, Counts: []float64{1, 2}})
	assert.Error(t, err)
}

func TestChartsLine(t *testing.T) {
	c := NewCharts(t.TempDir())

	path, err := c.Line(LineChart{
		Name:           "running",
		Title:          "Convergence to True Probability",
		XLabel:         "Number of Flips",
		YLabel:         "Running Probability",
		Y:              []float64{1, 0.5, 0.67, 0.5, 0.6, 0.5},
		Reference:      0.5,
		ReferenceLabel: "True Probability = 0.5",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	_, err = c.Line(LineChart{Name: "empty"})
	assert.Error(t, err)
}
