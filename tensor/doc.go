// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided multidimensional arrays with NumPy-style
// shape, view and broadcasting semantics.
//
// # Overview
//
// An Array[T] is a view over a shared typed buffer described by a shape,
// per-axis strides (in elements) and an offset. Many operations return new
// views over the same buffer instead of copying:
//   - Reshape, Ravel (when the layout allows), Transpose, Slice,
//     ExpandDims, BroadcastTo: views
//   - Flatten, Take (fancy indexing), Mask (boolean indexing), Copy: copies
//
// # Basic Usage
//
//	import "github.com/born-ml/ndlab/tensor"
//
//	func main() {
//	    a, _ := tensor.Arange[int64](6).Reshape(2, 3)
//	    t := a.T()                         // (3, 2) view
//	    fmt.Println(tensor.SharesMemory(a, t)) // true
//
//	    flat := a.Flatten()                // always a copy
//	    fmt.Println(tensor.SharesMemory(a, flat)) // false
//	}
//
// # Broadcasting
//
// BroadcastShapes right-aligns two shapes and pairs their extents from the
// trailing axis. Each pair must be equal or contain a 1:
//
//	(2, 3) with (3,)   -> (2, 3)
//	(2, 3) with (2, 1) -> (2, 3)
//	(2, 3) with (2,)   -> IncompatibleShapesError
//
// # View or Copy
//
// ClassifyTransform predicts whether a transform of a given array yields a
// view or a copy, and SharesMemory checks whether two arrays overlap in
// memory.
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int32, int64, uint8 and any
// named type with one of those underlying types.
package tensor
