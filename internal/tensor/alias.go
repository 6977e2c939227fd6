package tensor

import "unsafe"

// Memory is implemented by anything that occupies a byte range of memory.
// Every *Array[T] implements it, regardless of T.
type Memory interface {
	// MemoryExtent returns the first and last byte addresses touched.
	// ok is false when nothing is touched (an empty array).
	MemoryExtent() (lo, hi uintptr, ok bool)
}

// MemoryExtent returns the byte address range of the elements the array
// can reach through its layout.
func (a *Array[T]) MemoryExtent() (lo, hi uintptr, ok bool) {
	first, last, ok := a.layout.Span()
	if !ok {
		return 0, 0, false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	//nolint:gosec // address comparison only, the pointers are never dereferenced
	lo = uintptr(unsafe.Pointer(&a.data[first]))
	//nolint:gosec // address comparison only, the pointers are never dereferenced
	hi = uintptr(unsafe.Pointer(&a.data[last])) + size - 1
	return lo, hi, true
}

// SharesMemory reports whether the address ranges of a and b overlap.
// Shapes and strides don't matter, only the byte ranges; empty arrays share
// nothing. Like NumPy's may_share_memory this is a bounds check, so two
// interleaved strided views of one buffer report true.
//
// Example:
//
//	a := tensor.Arange[int64](6)
//	tensor.SharesMemory(a, a.Ravel())   // true
//	tensor.SharesMemory(a, a.Flatten()) // false
func SharesMemory(a, b Memory) bool {
	aLo, aHi, aOK := a.MemoryExtent()
	bLo, bHi, bOK := b.MemoryExtent()
	if !aOK || !bOK {
		return false
	}
	return aLo <= bHi && bLo <= aHi
}

// TransformKind names a transform whose aliasing ClassifyTransform can predict.
type TransformKind int

// Transform kinds.
const (
	Reshape TransformKind = iota
	Ravel
	Flatten
	Transpose
	FancyIndex
	BooleanIndex
	SliceIndex
)

// String returns a human-readable transform name.
func (k TransformKind) String() string {
	switch k {
	case Reshape:
		return "reshape"
	case Ravel:
		return "ravel"
	case Flatten:
		return "flatten"
	case Transpose:
		return "transpose"
	case FancyIndex:
		return "fancy-index"
	case BooleanIndex:
		return "boolean-index"
	case SliceIndex:
		return "slice"
	default:
		return "unknown"
	}
}

// Aliasing is the storage relationship between a source and a derived array.
type Aliasing int

// Aliasing outcomes.
const (
	View Aliasing = iota // derived array references the source's storage
	Copy                 // derived array owns independent storage
)

// String returns "view" or "copy".
func (al Aliasing) String() string {
	if al == View {
		return "view"
	}
	return "copy"
}

// ClassifyTransform predicts whether applying kind to a yields a View or a Copy.
//
//   - Reshape, Ravel: View when the row-major traversal can be expressed by
//     re-striding a's layout, Copy otherwise (Ravel copies, Reshape fails).
//   - Transpose, SliceIndex: always View; they only permute or scale strides.
//   - Flatten, FancyIndex, BooleanIndex: always Copy.
//
// Unknown kinds return *UnsupportedTransformError.
func ClassifyTransform[T DType](a *Array[T], kind TransformKind) (Aliasing, error) {
	switch kind {
	case Reshape, Ravel:
		if _, ok := a.layout.NoCopyReshape(Shape{a.NumElements()}); ok {
			return View, nil
		}
		return Copy, nil
	case Transpose, SliceIndex:
		return View, nil
	case Flatten, FancyIndex, BooleanIndex:
		return Copy, nil
	default:
		return Copy, &UnsupportedTransformError{Kind: kind}
	}
}
