package cpu

import (
	"github.com/born-ml/ndlab/internal/tensor"
)

// broadcastPair presents a and b as views of their common broadcast shape.
// Broadcast axes have stride 0, so no operand data is repeated in memory.
func broadcastPair[T tensor.DType](a, b *tensor.Array[T]) (av, bv *tensor.Array[T], out tensor.Shape, err error) {
	out, err = tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, nil, nil, err
	}
	if av, err = a.BroadcastTo(out); err != nil {
		return nil, nil, nil, err
	}
	if bv, err = b.BroadcastTo(out); err != nil {
		return nil, nil, nil, err
	}
	return av, bv, out, nil
}

// reducedShape returns shape with axis removed, or set to 1 when keepDim.
func reducedShape(shape tensor.Shape, axis int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[axis] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, dim := range shape {
		if i != axis {
			out = append(out, dim)
		}
	}
	return out
}

// computeFlatIndex maps a row-major input position onto the output slot it
// reduces into. strides are the input's row-major strides, outStrides the
// strides of the input shape with the reduced axis set to extent 1.
func computeFlatIndex(i int, strides, outStrides []int, axis int) int {
	outIdx := 0
	for d := range strides {
		coord := i / strides[d]
		i %= strides[d]
		if d != axis {
			outIdx += coord * outStrides[d]
		}
	}
	return outIdx
}
