package lab

import (
	"fmt"

	"github.com/born-ml/ndlab/internal/backend/cpu"
	"github.com/born-ml/ndlab/internal/tensor"
)

// Axes demonstrates reductions along each axis, with and without keepdims.
func (l *Lab) Axes() {
	l.begin("axes")

	var a *tensor.Array[int64]
	if !l.step("create matrix", func() error {
		var err error
		a, err = tensor.FromSlice([]int64{
			1, 2, 3, 4,
			10, 20, 30, 40,
			100, 200, 300, 400,
		}, tensor.Shape{3, 4})
		if err != nil {
			return err
		}
		l.sink.Array("original array A", a)
		return nil
	}) {
		return
	}

	l.step("sum", func() error {
		for _, axis := range []int{0, 1} {
			s, err := cpu.SumDim(a, axis, false)
			if err != nil {
				return err
			}
			l.sink.Array(fmt.Sprintf("sum (axis=%d)", axis), cpu.Convert[int64](s))
		}
		l.sink.Printf("sum (no axis): %g", cpu.Sum(a))
		return nil
	})

	reductions := []struct {
		name string
		op   cpu.ReduceOp
	}{
		{"mean", cpu.OpMean},
		{"max", cpu.OpMax},
		{"min", cpu.OpMin},
	}
	for _, r := range reductions {
		l.step(r.name, func() error {
			for _, axis := range []int{0, 1} {
				out, err := cpu.Reduce(a, r.op, cpu.ReduceOptions{Axis: cpu.Axis(axis)})
				if err != nil {
					return err
				}
				l.sink.Printf("%s (axis=%d): %v", r.name, axis, out)
			}
			return nil
		})
	}

	l.step("keepdims", func() error {
		for _, axis := range []int{0, 1} {
			k, err := cpu.SumDim(a, axis, true)
			if err != nil {
				return err
			}
			l.sink.Array(fmt.Sprintf("sum axis=%d with keepdims", axis), cpu.Convert[int64](k))
		}
		return nil
	})

	l.step("3D sums", func() error {
		b, err := tensor.Arange[int64](24).Reshape(2, 3, 4)
		if err != nil {
			return err
		}
		l.sink.Array("3D array B", b)
		for axis := range b.Rank() {
			s, err := cpu.SumDim(b, axis, false)
			if err != nil {
				return err
			}
			l.sink.Array(fmt.Sprintf("sum axis=%d", axis), cpu.Convert[int64](s))
		}
		return nil
	})

	l.step("max over an empty axis", func() error {
		empty, err := a.Slice(tensor.Span(0, 0))
		if err != nil {
			return err
		}
		l.sink.Printf("empty slice shape: %v", empty.Shape())
		_, err = cpu.MaxDim(empty, 0, false)
		return err
	})
}
