package cpu

import (
	"github.com/born-ml/ndlab/internal/tensor"
)

// Convert returns a new array with every element converted to U using Go
// conversion rules (floats truncate toward zero when converted to integers).
// The result always owns its buffer, even when U equals T.
//
// Example:
//
//	heads := tensor.Arange[int64](3)
//	ratio := cpu.Convert[float64](heads)
func Convert[U, T tensor.DType](a *tensor.Array[T]) *tensor.Array[U] {
	out := make([]U, a.NumElements())
	a.Walk(func(i int, v T) {
		out[i] = U(v)
	})
	r, err := tensor.FromSlice(out, a.Shape())
	if err != nil {
		panic(err)
	}
	return r
}

// CumSum returns the running sum of the row-major flattening of a, as a
// rank-1 array of the same element type.
func CumSum[T tensor.DType](a *tensor.Array[T]) *tensor.Array[T] {
	out := make([]T, a.NumElements())
	var acc T
	a.Walk(func(i int, v T) {
		acc += v
		out[i] = acc
	})
	r, err := tensor.FromSlice(out, tensor.Shape{len(out)})
	if err != nil {
		panic(err)
	}
	return r
}
