package tensor

import (
	"testing"
)

func BenchmarkArrayCreation(b *testing.B) {
	shape := Shape{100, 100}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Zeros[float32](shape)
		}
	})

	b.Run("Arange", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Arange[float64](10000)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape1 := Shape{100, 100}
	shape2 := Shape{100, 1}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.ComputeStrides()
		}
	})

	b.Run("BroadcastShapes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = BroadcastShapes(shape1, shape2)
		}
	})
}

func BenchmarkValues(b *testing.B) {
	a := Arange[float32](100 * 100)
	m, err := a.Reshape(100, 100)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Contiguous", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.Values()
		}
	})

	b.Run("Transposed", func(b *testing.B) {
		t := m.T()
		for i := 0; i < b.N; i++ {
			_ = t.Values()
		}
	})
}

func BenchmarkClassifyTransform(b *testing.B) {
	a := Arange[int64](24 * 24 * 24)
	m, err := a.Reshape(24, 24, 24)
	if err != nil {
		b.Fatal(err)
	}
	p, err := m.Transpose(2, 0, 1)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		_, _ = ClassifyTransform(p, Ravel)
	}
}
