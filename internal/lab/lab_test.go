package lab

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndlab/internal/logutil"
	"github.com/born-ml/ndlab/internal/report"
	"github.com/born-ml/ndlab/internal/tensor"
)

// recorder is a report.Sink and report.Plotter that keeps everything it
// is given.
type recorder struct {
	sections []string
	lines    []string
	arrays   map[string]string
	shapes   map[string]tensor.Shape
	tables   [][][]string
	failed   []string
	errs     map[string]error

	histograms []report.HistogramChart
	lineCharts []report.LineChart
}

func newRecorder() *recorder {
	return &recorder{
		arrays: make(map[string]string),
		shapes: make(map[string]tensor.Shape),
		errs:   make(map[string]error),
	}
}

func (r *recorder) Section(title string) { r.sections = append(r.sections, title) }

func (r *recorder) Printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recorder) Array(label string, a report.Printable) {
	r.arrays[label] = a.String()
	r.shapes[label] = a.Shape()
}

func (r *recorder) Table(_ []string, rows [][]string) { r.tables = append(r.tables, rows) }

func (r *recorder) Fail(step string, err error) {
	r.failed = append(r.failed, step)
	r.errs[step] = err
}

func (r *recorder) Histogram(c report.HistogramChart) (string, error) {
	r.histograms = append(r.histograms, c)
	return c.Name + ".png", nil
}

func (r *recorder) Line(c report.LineChart) (string, error) {
	r.lineCharts = append(r.lineCharts, c)
	return c.Name + ".png", nil
}

var smallConfig = Config{Seed: 42, Trials: 200, Flips: 50, Bins: 10}

func TestRunAll(t *testing.T) {
	rec := newRecorder()
	l := New(rec, rec, smallConfig)

	require.NoError(t, l.Run())

	assert.Equal(t, []string{"SHAPE EXPERIMENTS", "AXIS TESTS", "BROADCASTING CASES", "STATISTICAL SIMULATION"}, rec.sections)
	assert.Equal(t, []string{
		"reshape 1D -> (4, 2)",
		"max over an empty axis",
		"incompatible vector",
		"mismatched vectors",
	}, rec.failed)
	assert.Equal(t, len(rec.failed), l.Failed())

	assert.ErrorIs(t, rec.errs["reshape 1D -> (4, 2)"], tensor.ErrInvalidReshape)
	assert.ErrorIs(t, rec.errs["max over an empty axis"], tensor.ErrEmptyReduction)
	assert.ErrorIs(t, rec.errs["incompatible vector"], tensor.ErrIncompatibleShapes)
	assert.ErrorIs(t, rec.errs["mismatched vectors"], tensor.ErrIncompatibleShapes)
}

func TestRunSelected(t *testing.T) {
	rec := newRecorder()
	require.NoError(t, New(rec, nil, smallConfig).Run("axes", "shapes"))
	assert.Equal(t, []string{"AXIS TESTS", "SHAPE EXPERIMENTS"}, rec.sections)
}

func TestRunUnknown(t *testing.T) {
	rec := newRecorder()
	err := New(rec, nil, smallConfig).Run("shapes", "nope")
	assert.ErrorContains(t, err, `"nope"`)
	assert.Empty(t, rec.sections)
}

func TestShapes(t *testing.T) {
	rec := newRecorder()
	New(rec, nil, smallConfig).Shapes()

	assert.Equal(t, tensor.Shape{2, 3, 4}, rec.shapes["3D array"])
	assert.Equal(t, tensor.Shape{6, 1}, rec.shapes["reshape 1D -> (-1, 1)"])
	assert.Equal(t, tensor.Shape{3, 2}, rec.shapes["transposed 2D"])
	assert.Equal(t, tensor.Shape{3, 2, 4}, rec.shapes["3D transposed (1, 0, 2)"])

	// Writes through ravel and reshape(-1) reach the source; flatten's do not.
	assert.Equal(t, "[[999   1   2]\n [  3   4   5]]", rec.arrays["original after ravel[0] = 999"])
	assert.Equal(t, "[[999   1   2]\n [  3   4   5]]", rec.arrays["original after flatten[1] = 555"])
	assert.Equal(t, "[[999   1 111]\n [  3   4   5]]", rec.arrays["original after reshape(-1)[2] = 111"])

	require.Len(t, rec.tables, 2)
	assert.Equal(t, [][]string{
		{"flatten", "[0 1 2 3 4 5]", "None", "false"},
		{"ravel", "[0 1 2 3 4 5]", "array(2, 3)", "true"},
		{"reshape(-1)", "[0 1 2 3 4 5]", "array(2, 3)", "true"},
	}, rec.tables[0])
	assert.Equal(t, []string{"reshape", "view", "copy"}, rec.tables[1][0])
	assert.Equal(t, []string{"transpose", "view", "view"}, rec.tables[1][3])
}

func TestAxes(t *testing.T) {
	rec := newRecorder()
	New(rec, nil, smallConfig).Axes()

	assert.Equal(t, "[111 222 333 444]", rec.arrays["sum (axis=0)"])
	assert.Equal(t, tensor.Shape{4}, rec.shapes["sum (axis=0)"])
	assert.Equal(t, "[  10  100 1000]", rec.arrays["sum (axis=1)"])
	assert.Equal(t, tensor.Shape{1, 4}, rec.shapes["sum axis=0 with keepdims"])
	assert.Equal(t, tensor.Shape{3, 1}, rec.shapes["sum axis=1 with keepdims"])
	assert.Equal(t, tensor.Shape{2, 3}, rec.shapes["sum axis=2"])
	assert.Contains(t, rec.lines, "sum (no axis): 1110")
	assert.Contains(t, rec.lines, "max (axis=1): [  4.  40. 400.]")
}

func TestBroadcasting(t *testing.T) {
	rec := newRecorder()
	New(rec, nil, smallConfig).Broadcasting()

	assert.Equal(t, "[[11 12 13]\n [14 15 16]]", rec.arrays["A + 10"])
	assert.Equal(t, "[[11 22 33]\n [14 25 36]]", rec.arrays["A + row_vec"])
	assert.Equal(t, "[[11 12 13]\n [24 25 26]]", rec.arrays["A + col_vec"])
	assert.Equal(t, tensor.Shape{2, 3, 4}, rec.shapes["X + Y"])
	assert.Equal(t, tensor.Shape{3, 1}, rec.shapes["vec[:, newaxis]"])
	assert.Equal(t, tensor.Shape{1, 3}, rec.shapes["vec[newaxis, :]"])
	assert.Equal(t, "[[ 11  12  13]\n [101 102 103]]", rec.arrays["a_1 + a_2[:, newaxis]"])
	assert.Equal(t, tensor.Shape{3, 2}, rec.shapes["a_1[:, newaxis] + a_2"])

	var shapeErr *tensor.IncompatibleShapesError
	require.True(t, errors.As(rec.errs["incompatible vector"], &shapeErr))
	assert.Equal(t, tensor.Shape{2, 3}, shapeErr.A)
	assert.Equal(t, tensor.Shape{2}, shapeErr.B)

	require.Len(t, rec.tables, 1)
	assert.Equal(t, []string{"(2, 3)", "()", "(2, 3)"}, rec.tables[0][0])
	assert.Equal(t, []string{"(2, 3)", "(2,)", "incompatible"}, rec.tables[0][3])
	assert.Equal(t, []string{"(3,)", "(2, 1)", "(2, 3)"}, rec.tables[0][5])
	assert.Equal(t, []string{"(0,)", "(1,)", "(0,)"}, rec.tables[0][6])
	assert.Equal(t, []string{"(0,)", "(3,)", "incompatible"}, rec.tables[0][7])
}

func TestSimulation(t *testing.T) {
	rec := newRecorder()
	l := New(rec, rec, smallConfig)
	l.Simulation()

	assert.Zero(t, l.Failed())
	assert.Equal(t, tensor.Shape{200, 50}, rec.shapes["simulation"])
	assert.Equal(t, tensor.Shape{200}, rec.shapes["estimated probabilities"])
	assert.Equal(t, tensor.Shape{10000}, rec.shapes["running probability"])

	require.Len(t, rec.histograms, 1)
	var total float64
	for _, n := range rec.histograms[0].Counts {
		total += n
	}
	assert.Equal(t, 200.0, total)
	assert.Len(t, rec.histograms[0].Counts, 10)

	require.Len(t, rec.lineCharts, 1)
	assert.Len(t, rec.lineCharts[0].Y, 10000)
	assert.Equal(t, 0.5, rec.lineCharts[0].Reference)
	assert.Contains(t, rec.lines, "histogram written to estimate_histogram.png")
}

func TestSimulationInvalidConfig(t *testing.T) {
	rec := newRecorder()
	l := New(rec, nil, Config{Seed: 1, Trials: 0, Flips: 10, Bins: 10})
	l.Simulation()

	assert.Equal(t, []string{"simulate"}, rec.failed)
	assert.Equal(t, 1, l.Failed())
}

type failingPlotter struct{}

func (failingPlotter) Histogram(report.HistogramChart) (string, error) {
	return "", errors.New("disk full")
}

func (failingPlotter) Line(report.LineChart) (string, error) {
	return "", errors.New("disk full")
}

func TestSimulationChartFailureIsPerStep(t *testing.T) {
	rec := newRecorder()
	l := New(rec, failingPlotter{}, smallConfig)
	l.Simulation()

	assert.Equal(t, []string{"histogram", "running probability"}, rec.failed)
	assert.Contains(t, rec.arrays, "running probability")
}

func TestStepsLogAtTrace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(logutil.NewLogger(&buf, logutil.LevelTrace))

	rec := newRecorder()
	require.NoError(t, New(rec, nil, smallConfig).Run("shapes"))

	out := buf.String()
	assert.Contains(t, out, "level=TRACE")
	assert.Contains(t, out, `step="reshape 1D -> (4, 2)"`)
	assert.Contains(t, out, "ok=false")
	assert.Contains(t, out, "source=lab.go:")

	buf.Reset()
	slog.SetDefault(logutil.NewLogger(&buf, slog.LevelDebug))
	require.NoError(t, New(newRecorder(), nil, smallConfig).Run("shapes"))
	assert.NotContains(t, buf.String(), "level=TRACE")
}
