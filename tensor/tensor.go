// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndlab/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int32, int64, uint8.
type DType = tensor.DType

// DataType identifies the element type of an array at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Shape represents array dimensions.
type Shape = tensor.Shape

// Layout is the shape, strides and offset of an array.
type Layout = tensor.Layout

// Array is a strided view over a shared typed buffer.
type Array[T DType] = tensor.Array[T]

// Range selects part of one axis in Array.Slice.
type Range = tensor.Range

// Memory is implemented by every Array and used by SharesMemory.
type Memory = tensor.Memory

// TransformKind names an array transform for ClassifyTransform.
type TransformKind = tensor.TransformKind

// Transform kinds.
const (
	Reshape      = tensor.Reshape
	Ravel        = tensor.Ravel
	Flatten      = tensor.Flatten
	Transpose    = tensor.Transpose
	FancyIndex   = tensor.FancyIndex
	BooleanIndex = tensor.BooleanIndex
	SliceIndex   = tensor.SliceIndex
)

// Aliasing is the outcome of ClassifyTransform.
type Aliasing = tensor.Aliasing

// Aliasing outcomes.
const (
	View = tensor.View
	Copy = tensor.Copy
)

// Errors.
var (
	ErrIncompatibleShapes   = tensor.ErrIncompatibleShapes
	ErrInvalidReshape       = tensor.ErrInvalidReshape
	ErrEmptyReduction       = tensor.ErrEmptyReduction
	ErrUnsupportedTransform = tensor.ErrUnsupportedTransform
	ErrAxisOutOfRange       = tensor.ErrAxisOutOfRange
	ErrIndexOutOfRange      = tensor.ErrIndexOutOfRange
)

// Error types.
type (
	IncompatibleShapesError   = tensor.IncompatibleShapesError
	InvalidReshapeError       = tensor.InvalidReshapeError
	EmptyReductionError       = tensor.EmptyReductionError
	UnsupportedTransformError = tensor.UnsupportedTransformError
	AxisError                 = tensor.AxisError
	IndexError                = tensor.IndexError
)

// FromSlice creates an array owning a copy of data with the given shape.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a zero-filled array.
func Zeros[T DType](shape Shape) *Array[T] {
	return tensor.Zeros[T](shape)
}

// Full creates an array filled with value.
func Full[T DType](shape Shape, value T) *Array[T] {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 array.
func Scalar[T DType](v T) *Array[T] {
	return tensor.Scalar(v)
}

// Arange creates the vector [0, 1, ..., n-1].
func Arange[T DType](n int) *Array[T] {
	return tensor.Arange[T](n)
}

// BroadcastShapes returns the broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// BroadcastShapesN folds BroadcastShapes over any number of shapes.
func BroadcastShapesN(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapesN(shapes...)
}

// SharesMemory reports whether two arrays overlap in memory.
func SharesMemory(a, b Memory) bool {
	return tensor.SharesMemory(a, b)
}

// ClassifyTransform predicts whether applying kind to a yields a View or a Copy.
func ClassifyTransform[T DType](a *Array[T], kind TransformKind) (Aliasing, error) {
	return tensor.ClassifyTransform(a, kind)
}

// Slice ranges.
var (
	All     = tensor.All
	From    = tensor.From
	Span    = tensor.Span
	Strided = tensor.Strided
	Index   = tensor.Index
)
