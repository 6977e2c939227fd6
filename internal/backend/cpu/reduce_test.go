package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndlab/internal/tensor"
)

func newMatrix(t *testing.T) *tensor.Array[int64] {
	t.Helper()
	m, err := tensor.FromSlice([]int64{
		1, 2, 3, 4,
		10, 20, 30, 40,
		100, 200, 300, 400,
	}, tensor.Shape{3, 4})
	require.NoError(t, err)
	return m
}

func TestReduceAlongAxis(t *testing.T) {
	m := newMatrix(t)

	tests := []struct {
		name      string
		op        ReduceOp
		axis      int
		keepDims  bool
		wantShape tensor.Shape
		want      []float64
	}{
		{"sum axis 0", OpSum, 0, false, tensor.Shape{4}, []float64{111, 222, 333, 444}},
		{"sum axis 0 keepdims", OpSum, 0, true, tensor.Shape{1, 4}, []float64{111, 222, 333, 444}},
		{"sum axis 1", OpSum, 1, false, tensor.Shape{3}, []float64{10, 100, 1000}},
		{"sum axis -1 keepdims", OpSum, -1, true, tensor.Shape{3, 1}, []float64{10, 100, 1000}},
		{"mean axis 0", OpMean, 0, false, tensor.Shape{4}, []float64{37, 74, 111, 148}},
		{"mean axis 1", OpMean, 1, false, tensor.Shape{3}, []float64{2.5, 25, 250}},
		{"max axis 0", OpMax, 0, false, tensor.Shape{4}, []float64{100, 200, 300, 400}},
		{"max axis 1", OpMax, 1, true, tensor.Shape{3, 1}, []float64{4, 40, 400}},
		{"min axis 0", OpMin, 0, false, tensor.Shape{4}, []float64{1, 2, 3, 4}},
		{"min axis 1", OpMin, 1, false, tensor.Shape{3}, []float64{1, 10, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Reduce(m, tt.op, ReduceOptions{Axis: Axis(tt.axis), KeepDims: tt.keepDims})
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, r.Shape())
			assert.InDeltaSlice(t, tt.want, r.Values(), 1e-12)
		})
	}
}

func TestReduceAll(t *testing.T) {
	m := newMatrix(t)

	sum, err := Reduce(m, OpSum, ReduceOptions{})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{}, sum.Shape())
	assert.Equal(t, 1110.0, sum.Item())

	kept, err := Reduce(m, OpMax, ReduceOptions{KeepDims: true})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1}, kept.Shape())
	assert.Equal(t, 400.0, kept.Item())

	mean, err := Mean(m)
	require.NoError(t, err)
	assert.InDelta(t, 92.5, mean, 1e-12)

	assert.Equal(t, 1110.0, Sum(m))
}

func TestReduce3D(t *testing.T) {
	a, err := tensor.Arange[int32](24).Reshape(2, 3, 4)
	require.NoError(t, err)

	s0, err := SumDim(a, 0, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 4}, s0.Shape())
	assert.Equal(t, []float64{12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34}, s0.Values())

	s1, err := SumDim(a, 1, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 4}, s1.Shape())
	assert.Equal(t, []float64{12, 15, 18, 21, 48, 51, 54, 57}, s1.Values())

	s2, err := SumDim(a, 2, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, s2.Shape())
	assert.Equal(t, []float64{6, 22, 38, 54, 70, 86}, s2.Values())
}

func TestReduceStridedSource(t *testing.T) {
	m := newMatrix(t)

	// Reducing axis 1 of the transpose is reducing axis 0 of the source.
	r, err := SumDim(m.T(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{111, 222, 333, 444}, r.Values())

	b, err := tensor.Arange[float64](3).BroadcastTo(tensor.Shape{4, 3})
	require.NoError(t, err)
	r, err = SumDim(b, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4, 8}, r.Values())
}

func TestReduceKeepDimsBroadcastsBack(t *testing.T) {
	m := newMatrix(t)
	mean, err := MeanDim(m, 1, true)
	require.NoError(t, err)

	centered, err := Sub(Convert[float64](m), mean)
	require.NoError(t, err)
	rowSums, err := SumDim(centered, 1, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, rowSums.Values(), 1e-9)
}

func TestReduceEmpty(t *testing.T) {
	empty := tensor.Zeros[float64](tensor.Shape{0, 3})

	s, err := SumDim(empty, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, s.Values())
	assert.Equal(t, 0.0, Sum(empty))

	for _, op := range []ReduceOp{OpMax, OpMin, OpMean} {
		_, err := Reduce(empty, op, ReduceOptions{Axis: Axis(0)})
		var emptyErr *tensor.EmptyReductionError
		require.ErrorAs(t, err, &emptyErr, op.String())
		assert.Equal(t, 0, emptyErr.Axis)
		assert.ErrorIs(t, err, tensor.ErrEmptyReduction)

		_, err = Reduce(empty, op, ReduceOptions{})
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, -1, emptyErr.Axis)
	}

	// Reducing the non-empty axis of an empty array is fine and empty.
	r, err := MaxDim(empty, 1, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0}, r.Shape())
}

func TestReduceAxisOutOfRange(t *testing.T) {
	m := newMatrix(t)

	_, err := MinDim(m, 2, false)
	var axisErr *tensor.AxisError
	require.ErrorAs(t, err, &axisErr)
	assert.Equal(t, 2, axisErr.Axis)
	assert.Equal(t, 2, axisErr.Rank)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)

	_, err = SumDim(m, -3, false)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)

	_, err = Reduce(m, ReduceOp(9), ReduceOptions{})
	assert.Error(t, err)
}

func TestReduceNaN(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, math.NaN(), 3}, tensor.Shape{3})
	require.NoError(t, err)

	r, err := MaxDim(a, 0, false)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.Item()))
}
