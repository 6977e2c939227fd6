package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array.
// A zero-length Shape is a scalar.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	n := 1 // scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (all dimensions >= 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape, in elements.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * max(s[i+1], 1)
	}
	return strides
}

// String formats the shape as a tuple: (), (3,), (2, 3).
func (s Shape) String() string {
	return formatDims(s)
}

func formatDims(dims []int) string {
	switch len(dims) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(dims[0]) + ",)"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Right-align the shapes; missing leading dimensions are treated as 1
// 2. Compare aligned dimensions from right to left. A pair is compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. The result takes the non-1 extent of each pair
//
// A zero extent only broadcasts against 1 or another 0. The first incompatible
// pair (scanning from the trailing axis) is reported as *IncompatibleShapesError.
//
// Examples:
//
//	(2, 3) + (3,)   → (2, 3)
//	(2, 3) + (2, 1) → (2, 3)
//	()     + (5, 7) → (5, 7)
//	(3,)   + (2,)   → error at axis 0
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, &IncompatibleShapesError{
				A:    a.Clone(),
				B:    b.Clone(),
				Axis: maxLen - 1 - i,
				DimA: aDim,
				DimB: bDim,
			}
		}
	}

	return result, nil
}

// BroadcastShapesN folds BroadcastShapes over any number of shapes.
// With no shapes the result is a scalar.
func BroadcastShapesN(shapes ...Shape) (Shape, error) {
	out := Shape{}
	for _, s := range shapes {
		next, err := BroadcastShapes(out, s)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// BroadcastStrides returns strides that present an array with the given shape
// and strides as an array of shape out. Padded and size-1 axes get stride 0.
// out must already be a broadcast result for shape.
func BroadcastStrides(shape Shape, strides []int, out Shape) []int {
	result := make([]int, len(out))
	offset := len(out) - len(shape)
	for i := range out {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			result[i] = 0
		case shape[inIdx] == 1 && out[i] != 1:
			result[i] = 0
		default:
			result[i] = strides[inIdx]
		}
	}
	return result
}
