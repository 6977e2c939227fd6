// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndlab/internal/backend/cpu"
	"github.com/born-ml/ndlab/tensor"
)

// ReduceOp selects how Reduce combines elements.
type ReduceOp = internalcpu.ReduceOp

// Reduction operators.
const (
	OpSum  = internalcpu.OpSum
	OpMean = internalcpu.OpMean
	OpMax  = internalcpu.OpMax
	OpMin  = internalcpu.OpMin
)

// ReduceOptions configures Reduce. A nil Axis reduces over every axis.
type ReduceOptions = internalcpu.ReduceOptions

// Axis returns a pointer to axis for use in ReduceOptions.
func Axis(axis int) *int {
	return internalcpu.Axis(axis)
}

// Reduce combines the elements of a along opts.Axis (or all axes) with op.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndlab/backend/cpu"
//	    "github.com/born-ml/ndlab/tensor"
//	)
//
//	func main() {
//	    a, _ := tensor.Arange[int64](6).Reshape(2, 3)
//	    cols, _ := cpu.Reduce(a, cpu.OpSum, cpu.ReduceOptions{Axis: cpu.Axis(0)}) // [3. 5. 7.]
//	}
func Reduce[T tensor.DType](a *tensor.Array[T], op ReduceOp, opts ReduceOptions) (*tensor.Array[float64], error) {
	return internalcpu.Reduce(a, op, opts)
}

// SumDim sums along dim.
func SumDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return internalcpu.SumDim(a, dim, keepDim)
}

// MeanDim averages along dim.
func MeanDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return internalcpu.MeanDim(a, dim, keepDim)
}

// MaxDim returns the maximum along dim.
func MaxDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return internalcpu.MaxDim(a, dim, keepDim)
}

// MinDim returns the minimum along dim.
func MinDim[T tensor.DType](a *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[float64], error) {
	return internalcpu.MinDim(a, dim, keepDim)
}

// Sum returns the sum of every element.
func Sum[T tensor.DType](a *tensor.Array[T]) float64 {
	return internalcpu.Sum(a)
}

// Add adds with broadcasting.
func Add[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return internalcpu.Add(a, b)
}

// Sub subtracts with broadcasting.
func Sub[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return internalcpu.Sub(a, b)
}

// Mul multiplies with broadcasting.
func Mul[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	return internalcpu.Mul(a, b)
}

// Div divides with broadcasting, always producing float64.
func Div[T tensor.DType](a, b *tensor.Array[T]) (*tensor.Array[float64], error) {
	return internalcpu.Div(a, b)
}

// CumSum returns the running sum of the row-major flattening of a.
func CumSum[T tensor.DType](a *tensor.Array[T]) *tensor.Array[T] {
	return internalcpu.CumSum(a)
}

// Convert converts every element of a to U.
func Convert[U, T tensor.DType](a *tensor.Array[T]) *tensor.Array[U] {
	return internalcpu.Convert[U](a)
}
