package cpu

import (
	"fmt"

	"github.com/born-ml/ndlab/internal/tensor"
)

// ReduceOp selects how Reduce combines the elements along an axis.
type ReduceOp int

// Reduction operators.
const (
	OpSum ReduceOp = iota
	OpMean
	OpMax
	OpMin
)

// String returns the operator name as used in error messages.
func (op ReduceOp) String() string {
	switch op {
	case OpSum:
		return "sum"
	case OpMean:
		return "mean"
	case OpMax:
		return "maximum"
	case OpMin:
		return "minimum"
	default:
		return fmt.Sprintf("ReduceOp(%d)", int(op))
	}
}

// ReduceOptions configures Reduce.
type ReduceOptions struct {
	// Axis to reduce; nil reduces over every axis. Negative values count
	// from the end.
	Axis *int
	// KeepDims keeps reduced axes with extent 1.
	KeepDims bool
}

// Axis returns a pointer to axis for use in ReduceOptions.
func Axis(axis int) *int {
	return &axis
}

// Reduce combines the elements of a along opts.Axis (or all axes) with op.
// The result is always float64.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{1, 2, 3, 4, 10, 20, 30, 40}, tensor.Shape{2, 4})
//	y, _ := cpu.Reduce(x, cpu.OpSum, cpu.ReduceOptions{Axis: cpu.Axis(0)})                 // [11 22 33 44], shape (4,)
//	z, _ := cpu.Reduce(x, cpu.OpMax, cpu.ReduceOptions{Axis: cpu.Axis(1), KeepDims: true}) // [[4] [40]], shape (2, 1)
func Reduce[T tensor.DType](a *tensor.Array[T], op ReduceOp, opts ReduceOptions) (*tensor.Array[float64], error) {
	if op < OpSum || op > OpMin {
		return nil, fmt.Errorf("reduce: unknown operator %s", op)
	}
	if opts.Axis == nil {
		return reduceAll(a, op, opts.KeepDims)
	}

	shape := a.Shape()
	axis, err := tensor.NormalizeAxis(*opts.Axis, shape.Rank())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	extent := shape[axis]
	if extent == 0 && op != OpSum {
		return nil, &tensor.EmptyReductionError{Op: op.String(), Shape: shape, Axis: axis}
	}

	outShape := reducedShape(shape, axis, opts.KeepDims)
	result := make([]float64, outShape.NumElements())
	filled := make([]bool, len(result))

	strides := shape.ComputeStrides()
	keptShape := shape.Clone()
	keptShape[axis] = 1
	outStrides := keptShape.ComputeStrides()

	a.Walk(func(i int, v T) {
		j := computeFlatIndex(i, strides, outStrides, axis)
		result[j] = op.combine(result[j], float64(v), filled[j])
		filled[j] = true
	})

	if op == OpMean {
		divisor := float64(extent)
		for i := range result {
			result[i] /= divisor
		}
	}

	return tensor.FromSlice(result, outShape)
}

func reduceAll[T tensor.DType](a *tensor.Array[T], op ReduceOp, keepDims bool) (*tensor.Array[float64], error) {
	n := a.NumElements()
	if n == 0 && op != OpSum {
		return nil, &tensor.EmptyReductionError{Op: op.String(), Shape: a.Shape(), Axis: -1}
	}

	var acc float64
	a.Walk(func(i int, v T) {
		acc = op.combine(acc, float64(v), i > 0)
	})
	if op == OpMean {
		acc /= float64(n)
	}

	outShape := tensor.Shape{}
	if keepDims {
		outShape = make(tensor.Shape, a.Rank())
		for i := range outShape {
			outShape[i] = 1
		}
	}
	return tensor.FromSlice([]float64{acc}, outShape)
}

// combine folds v into acc. The first element of each group replaces acc.
func (op ReduceOp) combine(acc, v float64, filled bool) float64 {
	if !filled {
		return v
	}
	switch op {
	case OpMax:
		return max(acc, v)
	case OpMin:
		return min(acc, v)
	default:
		return acc + v
	}
}

// SumDim sums elements along dim.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
func SumDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return Reduce(a, OpSum, ReduceOptions{Axis: Axis(dim), KeepDims: keepDim})
}

// MeanDim computes the mean along dim. Fails on a zero-extent dim.
func MeanDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return Reduce(a, OpMean, ReduceOptions{Axis: Axis(dim), KeepDims: keepDim})
}

// MaxDim returns the maximum along dim. Fails on a zero-extent dim.
func MaxDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return Reduce(a, OpMax, ReduceOptions{Axis: Axis(dim), KeepDims: keepDim})
}

// MinDim returns the minimum along dim. Fails on a zero-extent dim.
func MinDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return Reduce(a, OpMin, ReduceOptions{Axis: Axis(dim), KeepDims: keepDim})
}

// Sum computes the total sum of all elements in the array (scalar result).
// The sum of an empty array is 0.
func Sum[T tensor.DType](a *tensor.Array[T]) float64 {
	var sum float64
	a.Walk(func(_ int, v T) {
		sum += float64(v)
	})
	return sum
}

// Mean computes the mean of all elements in the array.
func Mean[T tensor.DType](a *tensor.Array[T]) (float64, error) {
	r, err := Reduce(a, OpMean, ReduceOptions{})
	if err != nil {
		return 0, err
	}
	return r.Item(), nil
}
