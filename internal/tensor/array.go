package tensor

import (
	"fmt"
)

// Array is a strided, typed n-dimensional array.
//
// Several arrays may address the same buffer with different shapes, strides
// and offsets; those are views of one another. Arrays produced by Copy,
// Flatten, Take and Mask own fresh buffers.
//
// Example:
//
//	a := tensor.Arange[int64](6)         // (6,)
//	b, _ := a.Reshape(2, 3)              // (2, 3) view of a
//	b.Set(99, 0, 0)                      // a.At(0) == 99
type Array[T DType] struct {
	data   []T
	layout Layout
	base   *Array[T] // owner of data, nil if this array owns it
}

// newOwned wraps data as a contiguous array that owns its buffer.
func newOwned[T DType](data []T, shape Shape) *Array[T] {
	return &Array[T]{
		data:   data,
		layout: ContiguousLayout(shape),
	}
}

// view creates an array over a's buffer with the given layout.
func (a *Array[T]) view(layout Layout) *Array[T] {
	owner := a
	if a.base != nil {
		owner = a.base
	}
	return &Array[T]{
		data:   a.data,
		layout: layout,
		base:   owner,
	}
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return newOwned(buf, shape), nil
}

// Zeros creates an array filled with zeros.
// Panics if the shape has a negative dimension.
func Zeros[T DType](shape Shape) *Array[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newOwned(make([]T, shape.NumElements()), shape)
}

// Full creates an array filled with a specific value.
func Full[T DType](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Scalar creates a rank-0 array holding v.
func Scalar[T DType](v T) *Array[T] {
	return newOwned([]T{v}, Shape{})
}

// Arange creates a 1D array with values 0, 1, ..., n-1.
//
// Example:
//
//	t := tensor.Arange[int64](24) // [0, 1, 2, ..., 23]
func Arange[T DType](n int) *Array[T] {
	if n < 0 {
		panic("arange: n must be non-negative")
	}
	a := Zeros[T](Shape{n})
	for i := range a.data {
		a.data[i] = T(i)
	}
	return a
}

// Shape returns the array's shape. The result must not be modified.
func (a *Array[T]) Shape() Shape {
	return a.layout.Shape
}

// Strides returns the array's strides in elements. The result must not be modified.
func (a *Array[T]) Strides() []int {
	return a.layout.Strides
}

// Offset returns the position of the first element in the buffer.
func (a *Array[T]) Offset() int {
	return a.layout.Offset
}

// Layout returns a copy of the array's layout.
func (a *Array[T]) Layout() Layout {
	return Layout{
		Shape:   a.layout.Shape.Clone(),
		Strides: append([]int(nil), a.layout.Strides...),
		Offset:  a.layout.Offset,
	}
}

// Rank returns the number of axes (ndim).
func (a *Array[T]) Rank() int {
	return len(a.layout.Shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.layout.Shape.NumElements()
}

// DType returns the array's data type.
func (a *Array[T]) DType() DataType {
	return inferDataType[T]()
}

// Base returns the array that owns the buffer this array views,
// or nil if the array owns its buffer.
func (a *Array[T]) Base() *Array[T] {
	return a.base
}

// OwnsData reports whether the array allocated its own buffer.
func (a *Array[T]) OwnsData() bool {
	return a.base == nil
}

// IsContiguous reports whether the array is row-major contiguous.
func (a *Array[T]) IsContiguous() bool {
	return a.layout.IsContiguous()
}

// At returns the element at the given indices.
// Negative indices count from the end of their axis.
// Panics if the number of indices differs from the rank or an index is out of bounds.
//
// Example:
//
//	t := tensor.Zeros[float64](Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (a *Array[T]) At(indices ...int) T {
	return a.data[a.mustPosition(indices)]
}

// Set sets the element at the given indices.
// Panics if the number of indices differs from the rank or an index is out of bounds.
func (a *Array[T]) Set(value T, indices ...int) {
	a.data[a.mustPosition(indices)] = value
}

func (a *Array[T]) mustPosition(indices []int) int {
	if len(indices) != a.Rank() {
		panic(fmt.Sprintf("expected %d indices, got %d", a.Rank(), len(indices)))
	}
	pos, err := a.layout.position(indices)
	if err != nil {
		panic(err)
	}
	return pos
}

// AtFlat returns the i-th element in row-major logical order.
func (a *Array[T]) AtFlat(i int) T {
	return a.data[a.flatPosition(i)]
}

// SetFlat sets the i-th element in row-major logical order.
func (a *Array[T]) SetFlat(i int, value T) {
	a.data[a.flatPosition(i)] = value
}

func (a *Array[T]) flatPosition(i int) int {
	n := a.NumElements()
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Axis: 0, Extent: n})
	}
	if a.IsContiguous() {
		return a.layout.Offset + i
	}
	idx := make([]int, a.Rank())
	unravel(i, a.layout.Shape, idx)
	pos, _ := a.layout.position(idx)
	return pos
}

// Item returns the only element of a single-element array.
// Panics otherwise.
func (a *Array[T]) Item() T {
	if a.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element arrays, got shape %v", a.Shape()))
	}
	return a.AtFlat(0)
}

// Walk calls fn for every element in row-major logical order.
func (a *Array[T]) Walk(fn func(i int, v T)) {
	a.layout.forEachOffset(func(i, pos int) {
		fn(i, a.data[pos])
	})
}

// Values returns the elements in row-major logical order as a new slice.
func (a *Array[T]) Values() []T {
	out := make([]T, a.NumElements())
	if len(out) == 0 {
		return out
	}
	if a.IsContiguous() {
		copy(out, a.data[a.layout.Offset:])
		return out
	}
	a.Walk(func(i int, v T) {
		out[i] = v
	})
	return out
}

// Copy returns a contiguous array with its own buffer holding the same elements.
func (a *Array[T]) Copy() *Array[T] {
	return newOwned(a.Values(), a.layout.Shape.Clone())
}

// Fill sets every element to value. Views propagate the write to their source.
func (a *Array[T]) Fill(value T) {
	a.layout.forEachOffset(func(_, pos int) {
		a.data[pos] = value
	})
}
