package tensor

// Layout describes how a logical shape maps onto a flat buffer.
// Strides and Offset are measured in elements.
type Layout struct {
	Shape   Shape
	Strides []int
	Offset  int
}

// ContiguousLayout returns the row-major layout for shape starting at offset 0.
func ContiguousLayout(shape Shape) Layout {
	return Layout{Shape: shape.Clone(), Strides: shape.ComputeStrides()}
}

// IsContiguous reports whether the layout visits its elements in row-major
// order at consecutive addresses. Axes of extent 1 are ignored; an empty
// layout is contiguous.
func (l Layout) IsContiguous() bool {
	if l.Shape.NumElements() == 0 {
		return true
	}
	expected := 1
	for i := len(l.Shape) - 1; i >= 0; i-- {
		if l.Shape[i] == 1 {
			continue
		}
		if l.Strides[i] != expected {
			return false
		}
		expected *= l.Shape[i]
	}
	return true
}

// Span returns the lowest and highest buffer positions the layout touches.
// ok is false for layouts without elements.
func (l Layout) Span() (lo, hi int, ok bool) {
	if l.Shape.NumElements() == 0 {
		return 0, 0, false
	}
	lo, hi = l.Offset, l.Offset
	for i, dim := range l.Shape {
		step := l.Strides[i] * (dim - 1)
		if step < 0 {
			lo += step
		} else {
			hi += step
		}
	}
	return lo, hi, true
}

// NoCopyReshape computes strides that present the layout's elements, in
// row-major order, under newShape without moving any data. It returns false
// when the existing strides cannot express that traversal, in which case a
// reshape must copy. newShape must have the same element count.
//
// Runs of old axes are matched against runs of new axes with the same
// product; each old run must be internally contiguous, and the new run
// inherits the stride of the run's innermost old axis.
func (l Layout) NoCopyReshape(newShape Shape) ([]int, bool) {
	if l.Shape.NumElements() == 0 {
		return newShape.ComputeStrides(), true
	}

	// Size-1 axes carry no layout information.
	var oldDims, oldStrides []int
	for i, dim := range l.Shape {
		if dim != 1 {
			oldDims = append(oldDims, dim)
			oldStrides = append(oldStrides, l.Strides[i])
		}
	}

	newStrides := make([]int, len(newShape))
	oi, oj := 0, 1
	ni, nj := 0, 1
	for ni < len(newShape) && oi < len(oldDims) {
		np := newShape[ni]
		op := oldDims[oi]

		for np != op {
			if np < op {
				np *= newShape[nj]
				nj++
			} else {
				op *= oldDims[oj]
				oj++
			}
		}

		for ok := oi; ok < oj-1; ok++ {
			if oldStrides[ok] != oldDims[ok+1]*oldStrides[ok+1] {
				return nil, false
			}
		}

		newStrides[nj-1] = oldStrides[oj-1]
		for nk := nj - 1; nk > ni; nk-- {
			newStrides[nk-1] = newStrides[nk] * newShape[nk]
		}

		ni = nj
		nj++
		oi = oj
		oj++
	}

	// Trailing size-1 axes.
	last := 1
	if ni >= 1 {
		last = newStrides[ni-1]
	}
	for nk := ni; nk < len(newShape); nk++ {
		newStrides[nk] = last
	}
	return newStrides, true
}

// ResolveShape turns requested reshape dimensions into a concrete shape for
// total elements. At most one entry may be -1; it is inferred.
func ResolveShape(from Shape, dims []int) (Shape, error) {
	total := from.NumElements()
	out := make(Shape, len(dims))
	known := 1
	infer := -1
	for i, d := range dims {
		switch {
		case d == -1:
			if infer != -1 {
				return nil, &InvalidReshapeError{From: from, To: dims, Reason: "can only specify one unknown dimension"}
			}
			infer = i
		case d < 0:
			return nil, &InvalidReshapeError{From: from, To: dims, Reason: "negative dimension"}
		default:
			known *= d
			out[i] = d
		}
	}

	if infer >= 0 {
		if known == 0 || total%known != 0 {
			return nil, &InvalidReshapeError{From: from, To: dims, Reason: "cannot infer unknown dimension"}
		}
		out[infer] = total / known
		return out, nil
	}

	if known != total {
		return nil, &InvalidReshapeError{From: from, To: dims, Reason: "element count mismatch"}
	}
	return out, nil
}

// forEachOffset calls fn with the buffer position of every element of the
// layout, in row-major logical order.
func (l Layout) forEachOffset(fn func(i, pos int)) {
	n := l.Shape.NumElements()
	if n == 0 {
		return
	}
	rank := len(l.Shape)
	idx := make([]int, rank)
	pos := l.Offset
	for i := 0; i < n; i++ {
		fn(i, pos)

		// Odometer increment from the last axis.
		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			pos += l.Strides[d]
			if idx[d] < l.Shape[d] {
				break
			}
			pos -= l.Strides[d] * idx[d]
			idx[d] = 0
		}
	}
}

// position returns the buffer position of a multi-dimensional index.
func (l Layout) position(indices []int) (int, error) {
	pos := l.Offset
	for i, idx := range indices {
		if idx < 0 {
			idx += l.Shape[i]
		}
		if idx < 0 || idx >= l.Shape[i] {
			return 0, &IndexError{Index: indices[i], Axis: i, Extent: l.Shape[i]}
		}
		pos += idx * l.Strides[i]
	}
	return pos, nil
}

// unravel converts a row-major flat index into a multi-dimensional index.
func unravel(flat int, shape Shape, idx []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		s := shape[d]
		idx[d] = flat % s
		flat /= s
	}
}
