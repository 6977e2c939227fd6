package tensor

import "fmt"

// Reshape returns a view of the array with a new shape.
// One dimension may be -1 and is inferred from the element count.
//
// Reshape never copies: if the array's strides cannot express the new shape
// (for example a transposed array flattened to 1D), it returns
// *InvalidReshapeError. Use Ravel or Copy first when a copy is acceptable.
//
// Example:
//
//	t := tensor.Arange[int64](12) // Shape: (12,)
//	m, _ := t.Reshape(3, -1)      // Shape: (3, 4)
func (a *Array[T]) Reshape(dims ...int) (*Array[T], error) {
	newShape, err := ResolveShape(a.layout.Shape, dims)
	if err != nil {
		return nil, err
	}
	strides, ok := a.layout.NoCopyReshape(newShape)
	if !ok {
		return nil, &InvalidReshapeError{
			From:   a.layout.Shape.Clone(),
			To:     append([]int(nil), dims...),
			Reason: "source layout is not contiguous in the requested order and copying is not allowed",
		}
	}
	return a.view(Layout{Shape: newShape, Strides: strides, Offset: a.layout.Offset}), nil
}

// Ravel returns the elements as a 1D array, as a view when the layout allows
// it and as a copy otherwise.
func (a *Array[T]) Ravel() *Array[T] {
	flat := Shape{a.NumElements()}
	if strides, ok := a.layout.NoCopyReshape(flat); ok {
		return a.view(Layout{Shape: flat, Strides: strides, Offset: a.layout.Offset})
	}
	return newOwned(a.Values(), flat)
}

// Flatten returns the elements as a 1D array with its own buffer.
func (a *Array[T]) Flatten() *Array[T] {
	return newOwned(a.Values(), Shape{a.NumElements()})
}

// Transpose permutes the axes of the array and returns a view.
//
// If axes is empty, reverses all axes (for 2D, this is the standard transpose).
// Otherwise, axes must be a permutation of 0..rank-1; negative entries count
// from the end.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3, 4})
//	p, _ := t.Transpose(1, 0, 2) // Shape: (3, 2, 4)
func (a *Array[T]) Transpose(axes ...int) (*Array[T], error) {
	rank := a.Rank()
	perm := make([]int, rank)
	if len(axes) == 0 {
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	} else {
		if len(axes) != rank {
			return nil, fmt.Errorf("transpose: axes %v don't match array of dimension %d: %w",
				axes, rank, ErrAxisOutOfRange)
		}
		seen := make([]bool, rank)
		for i, ax := range axes {
			n, err := NormalizeAxis(ax, rank)
			if err != nil {
				return nil, fmt.Errorf("transpose: %w", err)
			}
			if seen[n] {
				return nil, fmt.Errorf("transpose: repeated axis %d in %v: %w", ax, axes, ErrAxisOutOfRange)
			}
			seen[n] = true
			perm[i] = n
		}
	}

	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i, p := range perm {
		shape[i] = a.layout.Shape[p]
		strides[i] = a.layout.Strides[p]
	}
	return a.view(Layout{Shape: shape, Strides: strides, Offset: a.layout.Offset}), nil
}

// T returns the array with all axes reversed.
func (a *Array[T]) T() *Array[T] {
	t, err := a.Transpose()
	if err != nil {
		panic(err) // reversing all axes is always a valid permutation
	}
	return t
}

// Range selects positions along one axis for Slice.
type Range struct {
	start, stop, step int
	hasStop           bool
	index             bool
}

// All selects every position of an axis.
func All() Range { return Range{step: 1} }

// From selects positions start, start+1, ... to the end of the axis.
func From(start int) Range { return Range{start: start, step: 1} }

// Span selects positions in [start, stop).
func Span(start, stop int) Range { return Range{start: start, stop: stop, step: 1, hasStop: true} }

// Strided selects positions start, start+step, ... below stop. step must be positive.
func Strided(start, stop, step int) Range {
	return Range{start: start, stop: stop, step: step, hasStop: true}
}

// Index selects a single position and removes the axis from the result.
func Index(i int) Range { return Range{start: i, step: 1, index: true} }

// Slice returns a view selecting ranges along the leading axes; axes without
// a range are kept whole. Negative start and stop count from the end of the
// axis and are clamped like Python slices.
//
// Example:
//
//	m := tensor.Arange[int64](12)    // then reshaped to (3, 4)
//	col, _ := m.Slice(All(), Index(1)) // Shape: (3,)
func (a *Array[T]) Slice(ranges ...Range) (*Array[T], error) {
	if len(ranges) > a.Rank() {
		return nil, fmt.Errorf("slice: too many ranges (%d) for array of dimension %d: %w",
			len(ranges), a.Rank(), ErrIndexOutOfRange)
	}

	offset := a.layout.Offset
	shape := make(Shape, 0, a.Rank())
	strides := make([]int, 0, a.Rank())
	for axis, dim := range a.layout.Shape {
		stride := a.layout.Strides[axis]
		if axis >= len(ranges) {
			shape = append(shape, dim)
			strides = append(strides, stride)
			continue
		}

		r := ranges[axis]
		if r.index {
			i := r.start
			if i < 0 {
				i += dim
			}
			if i < 0 || i >= dim {
				return nil, &IndexError{Index: r.start, Axis: axis, Extent: dim}
			}
			offset += i * stride
			continue
		}

		if r.step <= 0 {
			return nil, fmt.Errorf("slice: step %d on axis %d must be positive: %w", r.step, axis, ErrIndexOutOfRange)
		}
		start := clampBound(r.start, dim)
		stop := dim
		if r.hasStop {
			stop = clampBound(r.stop, dim)
		}
		n := 0
		if stop > start {
			n = (stop - start + r.step - 1) / r.step
		}
		if n > 0 {
			offset += start * stride
		}
		shape = append(shape, n)
		strides = append(strides, stride*r.step)
	}

	return a.view(Layout{Shape: shape, Strides: strides, Offset: offset}), nil
}

func clampBound(v, dim int) int {
	if v < 0 {
		v += dim
	}
	return min(max(v, 0), dim)
}

// ExpandDims inserts an axis of extent 1 at position axis and returns a view.
// axis may be in [-(rank+1), rank]. This is NumPy's np.newaxis.
//
// Example:
//
//	v := tensor.Arange[int64](3) // Shape: (3,)
//	c, _ := v.ExpandDims(1)      // Shape: (3, 1)
//	r, _ := v.ExpandDims(0)      // Shape: (1, 3)
func (a *Array[T]) ExpandDims(axis int) (*Array[T], error) {
	n, err := NormalizeAxis(axis, a.Rank()+1)
	if err != nil {
		return nil, fmt.Errorf("expand dims: %w", err)
	}
	shape := make(Shape, 0, a.Rank()+1)
	strides := make([]int, 0, a.Rank()+1)
	shape = append(shape, a.layout.Shape[:n]...)
	strides = append(strides, a.layout.Strides[:n]...)
	shape = append(shape, 1)
	strides = append(strides, 0)
	shape = append(shape, a.layout.Shape[n:]...)
	strides = append(strides, a.layout.Strides[n:]...)
	return a.view(Layout{Shape: shape, Strides: strides, Offset: a.layout.Offset}), nil
}

// Squeeze removes the axis of extent 1 at position axis and returns a view.
func (a *Array[T]) Squeeze(axis int) (*Array[T], error) {
	n, err := NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("squeeze: %w", err)
	}
	if a.layout.Shape[n] != 1 {
		return nil, fmt.Errorf("squeeze: axis %d has extent %d, not 1: %w", axis, a.layout.Shape[n], ErrInvalidReshape)
	}
	shape := append(a.layout.Shape[:n:n], a.layout.Shape[n+1:]...)
	strides := append(a.layout.Strides[:n:n], a.layout.Strides[n+1:]...)
	return a.view(Layout{Shape: shape, Strides: strides, Offset: a.layout.Offset}), nil
}

// BroadcastTo returns a read-mostly view of the array with the given shape.
// Repeated axes have stride 0, so no element is materialized; writing through
// the view writes the single shared source element.
func (a *Array[T]) BroadcastTo(shape Shape) (*Array[T], error) {
	out, err := BroadcastShapes(a.layout.Shape, shape)
	if err != nil {
		return nil, err
	}
	if !out.Equal(shape) {
		axis := mismatchAxis(out, shape)
		return nil, &IncompatibleShapesError{
			A:    a.layout.Shape.Clone(),
			B:    shape.Clone(),
			Axis: axis,
			DimA: out[axis],
			DimB: shape[axis],
		}
	}
	strides := BroadcastStrides(a.layout.Shape, a.layout.Strides, out)
	return a.view(Layout{Shape: out, Strides: strides, Offset: a.layout.Offset}), nil
}

// mismatchAxis returns the trailing-most axis at which equal-rank shapes differ.
func mismatchAxis(a, b Shape) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return i
		}
	}
	return 0
}

// Take gathers the given positions along axis into a new array (fancy indexing).
// The result always owns its buffer. Negative indices count from the end.
//
// Example:
//
//	m := ... // (3, 4)
//	rows, _ := m.Take(0, []int{2, 0}) // Shape: (2, 4), rows 2 and 0
func (a *Array[T]) Take(axis int, indices []int) (*Array[T], error) {
	ax, err := NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	dim := a.layout.Shape[ax]
	resolved := make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			idx += dim
		}
		if idx < 0 || idx >= dim {
			return nil, &IndexError{Index: indices[i], Axis: ax, Extent: dim}
		}
		resolved[i] = idx
	}

	outShape := a.layout.Shape.Clone()
	outShape[ax] = len(resolved)
	out := Zeros[T](outShape)

	idx := make([]int, a.Rank())
	src := make([]int, a.Rank())
	for i := range out.data {
		unravel(i, outShape, idx)
		copy(src, idx)
		src[ax] = resolved[idx[ax]]
		pos, _ := a.layout.position(src)
		out.data[i] = a.data[pos]
	}
	return out, nil
}

// Mask selects the elements whose mask entry is true, in row-major order,
// into a new 1D array (boolean indexing). mask must have one entry per element.
func (a *Array[T]) Mask(mask []bool) (*Array[T], error) {
	if len(mask) != a.NumElements() {
		return nil, fmt.Errorf("mask: %d entries for array of shape %v with %d elements: %w",
			len(mask), a.Shape(), a.NumElements(), ErrIncompatibleShapes)
	}
	selected := make([]T, 0, len(mask))
	a.Walk(func(i int, v T) {
		if mask[i] {
			selected = append(selected, v)
		}
	})
	return newOwned(selected, Shape{len(selected)}), nil
}

// MaskWhere builds a boolean mask by applying pred to every element in
// row-major order, for use with Mask.
func (a *Array[T]) MaskWhere(pred func(T) bool) []bool {
	mask := make([]bool, a.NumElements())
	a.Walk(func(i int, v T) {
		mask[i] = pred(v)
	})
	return mask
}
