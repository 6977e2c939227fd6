package cpu

import (
	"testing"

	"github.com/born-ml/ndlab/internal/tensor"
)

func BenchmarkAddBroadcast(b *testing.B) {
	m, err := tensor.Arange[float64](256 * 256).Reshape(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	row := tensor.Arange[float64](256)

	for i := 0; i < b.N; i++ {
		if _, err := Add(m, row); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSumDim(b *testing.B) {
	m, err := tensor.Arange[int64](256 * 256).Reshape(256, 256)
	if err != nil {
		b.Fatal(err)
	}

	for _, axis := range []int{0, 1} {
		b.Run(map[int]string{0: "axis0", 1: "axis1"}[axis], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := SumDim(m, axis, false); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
