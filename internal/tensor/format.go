package tensor

import (
	"strconv"
	"strings"
)

const (
	// summaryThreshold is the element count above which String elides the
	// middle of long axes.
	summaryThreshold = 1000
	edgeItems        = 3
	ellipsis         = -1
)

// String renders the elements as nested bracketed rows, NumPy style:
//
//	[[0 1 2]
//	 [3 4 5]]
//
// Columns are right-aligned to the widest element. Arrays with more than
// 1000 elements show only the first and last 3 entries of each longer axis.
func (a *Array[T]) String() string {
	shape := a.layout.Shape
	if len(shape) == 0 {
		return formatElement(a.Item())
	}

	summarize := a.NumElements() > summaryThreshold
	f := &formatter[T]{a: a, shown: make([][]int, len(shape)), idx: make([]int, len(shape))}
	for d, n := range shape {
		f.shown[d] = shownIndices(n, summarize)
	}
	f.measure(0)

	var sb strings.Builder
	f.write(&sb, 0)
	return sb.String()
}

// shownIndices lists the indices of an axis of extent n to print, with
// ellipsis standing in for the elided middle.
func shownIndices(n int, summarize bool) []int {
	if !summarize || n <= 2*edgeItems {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, 2*edgeItems+1)
	for i := 0; i < edgeItems; i++ {
		out = append(out, i)
	}
	out = append(out, ellipsis)
	for i := n - edgeItems; i < n; i++ {
		out = append(out, i)
	}
	return out
}

type formatter[T DType] struct {
	a     *Array[T]
	shown [][]int
	idx   []int
	width int
}

// measure finds the widest printed element.
func (f *formatter[T]) measure(d int) {
	for _, i := range f.shown[d] {
		if i == ellipsis {
			continue
		}
		f.idx[d] = i
		if d == len(f.idx)-1 {
			f.width = max(f.width, len(formatElement(f.a.At(f.idx...))))
		} else {
			f.measure(d + 1)
		}
	}
}

// write prints axis d and everything below it. Sub-blocks are separated by
// one newline per remaining axis and indented to their depth.
func (f *formatter[T]) write(sb *strings.Builder, d int) {
	last := d == len(f.idx)-1
	sep := " "
	if !last {
		sep = strings.Repeat("\n", len(f.idx)-1-d) + strings.Repeat(" ", d+1)
	}

	sb.WriteByte('[')
	for n, i := range f.shown[d] {
		if n > 0 {
			sb.WriteString(sep)
		}
		if i == ellipsis {
			sb.WriteString("...")
			continue
		}
		f.idx[d] = i
		if !last {
			f.write(sb, d+1)
			continue
		}
		cell := formatElement(f.a.At(f.idx...))
		sb.WriteString(strings.Repeat(" ", f.width-len(cell)))
		sb.WriteString(cell)
	}
	sb.WriteByte(']')
}

func formatElement[T DType](v T) string {
	switch x := any(v).(type) {
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	}
	if isFloat[T]() {
		return formatFloat(float64(v), 64)
	}
	return strconv.FormatInt(int64(v), 10)
}

// formatFloat prints integral floats with a trailing dot (3.) and others in
// shortest form, mirroring NumPy's repr.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += "."
	}
	return s
}
