// Package cpu implements element-wise arithmetic, reductions and conversions
// over strided tensor arrays in pure Go.
//
// Every function here reads its operands through their layouts, so views
// (transposed, sliced, broadcast) are accepted without first copying them,
// and every result is a fresh contiguous array.
package cpu

import (
	"fmt"

	"github.com/born-ml/ndlab/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := tensor.FromSlice([]int64{10, 20, 30}, tensor.Shape{3})
//	c, _ := cpu.Add(a, b) // [[11 22 33] [14 25 36]]
func Add[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return binary(a, b, "add", func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func Sub[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return binary(a, b, "sub", func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func Mul[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return binary(a, b, "mul", func(x, y T) T { return x * y })
}

// Div performs element-wise true division with broadcasting.
// The result is always float64, so integer operands divide like NumPy's "/".
func Div[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[float64], error) {
	av, bv, outShape, err := broadcastPair(a, b)
	if err != nil {
		return nil, fmt.Errorf("div: %w", err)
	}
	out := make([]float64, outShape.NumElements())
	y := bv.Values()
	av.Walk(func(i int, x T) {
		out[i] = float64(x) / float64(y[i])
	})
	return tensor.FromSlice(out, outShape)
}

// AddScalar adds a scalar to every element.
func AddScalar[T tensor.DType](a *tensor.Array[T], s T) *tensor.Array[T] {
	return mustScalar(Add(a, tensor.Scalar(s)))
}

// SubScalar subtracts a scalar from every element.
func SubScalar[T tensor.DType](a *tensor.Array[T], s T) *tensor.Array[T] {
	return mustScalar(Sub(a, tensor.Scalar(s)))
}

// MulScalar multiplies every element by a scalar.
func MulScalar[T tensor.DType](a *tensor.Array[T], s T) *tensor.Array[T] {
	return mustScalar(Mul(a, tensor.Scalar(s)))
}

// DivScalar divides every element by a scalar, returning float64 results.
func DivScalar[T tensor.DType](a *tensor.Array[T], s T) *tensor.Array[float64] {
	return mustScalar(Div(a, tensor.Scalar(s)))
}

// mustScalar unwraps results of scalar operations, which cannot fail to
// broadcast because a rank-0 operand is compatible with every shape.
func mustScalar[T tensor.DType](r *tensor.Array[T], err error) *tensor.Array[T] {
	if err != nil {
		panic(fmt.Sprintf("scalar op: %v", err))
	}
	return r
}

// binary applies fn pairwise over the broadcast of a and b.
func binary[T tensor.DType](a, b *tensor.Array[T], op string, fn func(x, y T) T) (*tensor.Array[T], error) {
	av, bv, outShape, err := broadcastPair(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]T, outShape.NumElements())
	y := bv.Values()
	av.Walk(func(i int, x T) {
		out[i] = fn(x, y[i])
	})
	return tensor.FromSlice(out, outShape)
}
