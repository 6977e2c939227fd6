package lab

import (
	"fmt"

	"github.com/born-ml/ndlab/internal/backend/cpu"
	"github.com/born-ml/ndlab/internal/tensor"
)

// Broadcasting demonstrates scalar, row, column and 3D broadcasting, two
// incompatible pairs, and how inserting an axis makes one of them
// compatible.
func (l *Lab) Broadcasting() {
	l.begin("broadcast")

	var a *tensor.Array[int64]
	if !l.step("create matrix", func() error {
		var err error
		if a, err = tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}); err != nil {
			return err
		}
		l.sink.Array("matrix A", a)
		return nil
	}) {
		return
	}

	l.step("scalar", func() error {
		l.sink.Array("A + 10", cpu.AddScalar(a, 10))
		return nil
	})

	l.step("row vector", func() error {
		row := vector(10, 20, 30)
		l.sink.Array("row vector", row)
		return l.add("A + row_vec", a, row)
	})

	l.step("column vector", func() error {
		col, err := tensor.FromSlice([]int64{10, 20}, tensor.Shape{2, 1})
		if err != nil {
			return err
		}
		l.sink.Array("column vector", col)
		return l.add("A + col_vec", a, col)
	})

	l.step("incompatible vector", func() error {
		b := vector(1, 2)
		l.sink.Array("vector B", b)
		return l.add("A + B", a, b)
	})

	l.step("3D tensor", func() error {
		x, err := tensor.Arange[int64](24).Reshape(2, 3, 4)
		if err != nil {
			return err
		}
		y := vector(1, 2, 3, 4)
		l.sink.Printf("3D tensor X shape: %v", x.Shape())
		l.sink.Printf("vector Y shape: %v", y.Shape())
		return l.add("X + Y", x, y)
	})

	l.step("new axis", func() error {
		v := vector(1, 2, 3)
		col, err := v.ExpandDims(1)
		if err != nil {
			return err
		}
		row, err := v.ExpandDims(0)
		if err != nil {
			return err
		}
		l.sink.Printf("original vector shape: %v", v.Shape())
		l.sink.Array("vec[:, newaxis]", col)
		l.sink.Array("vec[newaxis, :]", row)
		return nil
	})

	a1 := vector(1, 2, 3)
	a2 := vector(10, 100)

	l.step("mismatched vectors", func() error {
		return l.add("a_1 + a_2", a1, a2)
	})

	l.step("fix by expanding a_2", func() error {
		e, err := a2.ExpandDims(1)
		if err != nil {
			return err
		}
		return l.add("a_1 + a_2[:, newaxis]", a1, e)
	})

	l.step("fix by expanding a_1", func() error {
		e, err := a1.ExpandDims(1)
		if err != nil {
			return err
		}
		return l.add("a_1[:, newaxis] + a_2", e, a2)
	})

	l.step("shape table", func() error {
		pairs := [][2]tensor.Shape{
			{{2, 3}, {}},
			{{2, 3}, {3}},
			{{2, 3}, {2, 1}},
			{{2, 3}, {2}},
			{{2, 3, 4}, {4}},
			{{3}, {2, 1}},
			{{0}, {1}},
			{{0}, {3}},
		}
		rows := make([][]string, 0, len(pairs))
		for _, p := range pairs {
			result := "incompatible"
			if out, err := tensor.BroadcastShapes(p[0], p[1]); err == nil {
				result = out.String()
			}
			rows = append(rows, []string{p[0].String(), p[1].String(), result})
		}
		l.sink.Table([]string{"A", "B", "BROADCAST"}, rows)
		return nil
	})
}

// add prints a + b with its shape, or returns the broadcast error.
func (l *Lab) add(label string, a, b *tensor.Array[int64]) error {
	r, err := cpu.Add(a, b)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	l.sink.Array(label, r)
	return nil
}

func vector(values ...int64) *tensor.Array[int64] {
	v, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	if err != nil {
		panic(err)
	}
	return v
}
