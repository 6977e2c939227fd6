package lab

import (
	"fmt"
	"strconv"

	"github.com/born-ml/ndlab/internal/tensor"
)

// Shapes demonstrates shape, rank, reshape, transpose and the view versus
// copy behavior of flatten, ravel and reshape(-1).
func (l *Lab) Shapes() {
	l.begin("shapes")

	a1 := tensor.Arange[int64](6)
	var a2, a3 *tensor.Array[int64]

	l.step("create arrays", func() error {
		var err error
		if a2, err = tensor.Arange[int64](6).Reshape(2, 3); err != nil {
			return err
		}
		if a3, err = tensor.Arange[int64](24).Reshape(2, 3, 4); err != nil {
			return err
		}
		l.sink.Array("1D array", a1)
		l.sink.Array("2D array", a2)
		l.sink.Array("3D array", a3)
		return nil
	})

	for _, dims := range [][]int{{3, 2}, {2, 3}, {6, 1, 1}, {1, 1, 6}, {-1, 1}, {4, 2}} {
		label := "reshape 1D -> " + tensor.Shape(dims).String()
		l.step(label, func() error {
			r, err := a1.Reshape(dims...)
			if err != nil {
				return err
			}
			l.sink.Array(label, r)
			return nil
		})
	}

	if a2 == nil || a3 == nil {
		return
	}

	l.step("transpose", func() error {
		l.sink.Array("original 2D", a2)
		l.sink.Array("transposed 2D", a2.T())
		p, err := a3.Transpose(1, 0, 2)
		if err != nil {
			return err
		}
		l.sink.Array("3D transposed (1, 0, 2)", p)
		return nil
	})

	l.step("flatten, ravel and reshape", func() error {
		return l.viewsAndCopies(a2)
	})

	l.step("classify transforms", func() error {
		return l.classify(a2)
	})
}

// viewsAndCopies mutates each derived array and shows which writes reach
// the source.
func (l *Lab) viewsAndCopies(a2 *tensor.Array[int64]) error {
	src := a2.Copy()
	flat := src.Flatten()
	rav := src.Ravel()
	reshaped, err := src.Reshape(-1)
	if err != nil {
		return err
	}

	l.sink.Array("original 2D", src)
	rows := [][]string{
		baseRow("flatten", src, flat),
		baseRow("ravel", src, rav),
		baseRow("reshape(-1)", src, reshaped),
	}
	l.sink.Table([]string{"OPERATION", "RESULT", "BASE", "SHARES MEMORY"}, rows)

	for _, m := range []struct {
		name  string
		arr   *tensor.Array[int64]
		index int
		value int64
	}{
		{"ravel", rav, 0, 999},
		{"flatten", flat, 1, 555},
		{"reshape(-1)", reshaped, 2, 111},
	} {
		m.arr.SetFlat(m.index, m.value)
		l.sink.Array(fmt.Sprintf("original after %s[%d] = %d", m.name, m.index, m.value), src)
	}
	return nil
}

func baseRow(name string, src, derived *tensor.Array[int64]) []string {
	base := "None"
	if b := derived.Base(); b != nil {
		base = "array" + b.Shape().String()
	}
	return []string{name, derived.String(), base, strconv.FormatBool(tensor.SharesMemory(src, derived))}
}

// classify tabulates ClassifyTransform for a contiguous array and its
// transpose.
func (l *Lab) classify(a2 *tensor.Array[int64]) error {
	kinds := []tensor.TransformKind{
		tensor.Reshape, tensor.Ravel, tensor.Flatten, tensor.Transpose,
		tensor.FancyIndex, tensor.BooleanIndex, tensor.SliceIndex,
	}

	rows := make([][]string, 0, len(kinds))
	for _, kind := range kinds {
		contiguous, err := tensor.ClassifyTransform(a2, kind)
		if err != nil {
			return err
		}
		transposed, err := tensor.ClassifyTransform(a2.T(), kind)
		if err != nil {
			return err
		}
		rows = append(rows, []string{kind.String(), contiguous.String(), transposed.String()})
	}
	l.sink.Table([]string{"TRANSFORM", "C-CONTIGUOUS", "TRANSPOSED"}, rows)
	return nil
}
