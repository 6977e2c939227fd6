package tensor

import (
	"errors"
	"fmt"
)

// Common errors. Every typed error below unwraps to one of these.
var (
	ErrIncompatibleShapes   = errors.New("shapes are not broadcast-compatible")
	ErrInvalidReshape       = errors.New("invalid reshape")
	ErrEmptyReduction       = errors.New("reduction over zero elements")
	ErrUnsupportedTransform = errors.New("unsupported transform")
	ErrAxisOutOfRange       = errors.New("axis out of range")
	ErrIndexOutOfRange      = errors.New("index out of range")
)

// IncompatibleShapesError reports the first aligned axis at which two shapes
// cannot be broadcast together. Axis indexes the right-aligned result shape.
type IncompatibleShapesError struct {
	A, B Shape
	Axis int
	DimA int
	DimB int
}

// Error implements the error interface.
func (e *IncompatibleShapesError) Error() string {
	return fmt.Sprintf("operands could not be broadcast together with shapes %v %v (axis %d: %d vs %d)",
		e.A, e.B, e.Axis, e.DimA, e.DimB)
}

// Unwrap returns ErrIncompatibleShapes.
func (e *IncompatibleShapesError) Unwrap() error { return ErrIncompatibleShapes }

// InvalidReshapeError reports a reshape that changes the element count, has a
// malformed target, or would need a copy of a non-contiguous source.
type InvalidReshapeError struct {
	From   Shape
	To     []int // requested dimensions, -1 entries preserved
	Reason string
}

// Error implements the error interface.
func (e *InvalidReshapeError) Error() string {
	return fmt.Sprintf("cannot reshape array of shape %v into %v: %s", e.From, formatDims(e.To), e.Reason)
}

// Unwrap returns ErrInvalidReshape.
func (e *InvalidReshapeError) Unwrap() error { return ErrInvalidReshape }

// EmptyReductionError reports a Max, Min or Mean over zero elements.
// Axis is -1 when the reduction covered every axis.
type EmptyReductionError struct {
	Op    string
	Shape Shape
	Axis  int
}

// Error implements the error interface.
func (e *EmptyReductionError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("zero-size array %v to reduction operation %s", e.Shape, e.Op)
	}
	return fmt.Sprintf("zero-size axis %d of array %v to reduction operation %s", e.Axis, e.Shape, e.Op)
}

// Unwrap returns ErrEmptyReduction.
func (e *EmptyReductionError) Unwrap() error { return ErrEmptyReduction }

// UnsupportedTransformError reports a transform kind the classifier does not know.
type UnsupportedTransformError struct {
	Kind TransformKind
}

// Error implements the error interface.
func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("unsupported transform kind %d", int(e.Kind))
}

// Unwrap returns ErrUnsupportedTransform.
func (e *UnsupportedTransformError) Unwrap() error { return ErrUnsupportedTransform }

// AxisError reports an axis outside [-rank, rank).
type AxisError struct {
	Axis int
	Rank int
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("axis %d is out of bounds for array of dimension %d", e.Axis, e.Rank)
}

// Unwrap returns ErrAxisOutOfRange.
func (e *AxisError) Unwrap() error { return ErrAxisOutOfRange }

// IndexError reports an index outside the extent of an axis.
type IndexError struct {
	Index  int
	Axis   int
	Extent int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of bounds for axis %d with size %d", e.Index, e.Axis, e.Extent)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// NormalizeAxis maps a possibly negative axis onto [0, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	n := axis
	if n < 0 {
		n += rank
	}
	if n < 0 || n >= rank {
		return 0, &AxisError{Axis: axis, Rank: rank}
	}
	return n, nil
}
