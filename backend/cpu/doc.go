// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides pure Go arithmetic and reductions over tensor arrays.
//
// # Overview
//
// This package implements:
//   - NumPy-compatible broadcasting for Add, Sub, Mul and Div
//   - Axis reductions (sum, mean, max, min) with keepdims
//   - Cumulative sums and element type conversion
//
// Every function reads its operands through their strides, so transposed,
// sliced and broadcast views need no copying first. Results are always new
// contiguous arrays.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndlab/backend/cpu"
//	    "github.com/born-ml/ndlab/tensor"
//	)
//
//	func main() {
//	    a, _ := tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    row, _ := tensor.FromSlice([]int64{10, 20, 30}, tensor.Shape{3})
//
//	    sum, _ := cpu.Add(a, row)          // [[11 22 33] [14 25 36]]
//	    cols, _ := cpu.SumDim(sum, 0, false) // [25. 47. 69.]
//	}
package cpu
