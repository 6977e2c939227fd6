// Package tensor provides the strided array type and the shape, layout and
// aliasing rules the rest of ndlab is built on.
package tensor

import "unsafe"

// DType is a constraint for supported array element types.
// Arrays are homogeneous: every element has the same numeric type.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types for arrays.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	}
	// Named types built on a supported kind fall through to the size.
	switch unsafe.Sizeof(dummy) {
	case 1:
		return Uint8
	case 4:
		if isFloat[T]() {
			return Float32
		}
		return Int32
	default:
		if isFloat[T]() {
			return Float64
		}
		return Int64
	}
}

// isFloat reports whether T holds fractional values.
func isFloat[T DType]() bool {
	f := 0.5
	return T(f) != 0
}
