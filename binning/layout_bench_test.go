package binning

import (
	"testing"

	"github.com/claireguyot/root/axis"
)

func benchLayout(b *testing.B, opts ...Option) *Layout {
	b.Helper()

	x, _ := axis.NewEquidistant(100, -5, 5)
	y, _ := axis.NewGrowable(50, 0, 1)
	z, _ := axis.NewEquidistant(20, 10, 30)

	l, err := NewLayout([]Axis{x, y, z}, opts...)
	if err != nil {
		b.Fatal(err)
	}

	return l
}

func BenchmarkLayout_FindGlobal(b *testing.B) {
	l := benchLayout(b)
	coords := []float64{0.3, 0.7, 12.5}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.FindGlobal(coords)
	}
}

func BenchmarkLayout_LocalBins(b *testing.B) {
	for _, bc := range []struct {
		name string
		opts []Option
	}{
		{"search", nil},
		{"table", []Option{WithTableCache(NewTableCache())}},
	} {
		b.Run(bc.name, func(b *testing.B) {
			l := benchLayout(b, bc.opts...)
			dst := make([]int, l.NDims())
			n := l.NOverflowBins()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = l.LocalBins(-(i%n + 1), dst)
			}
		})
	}
}

func BenchmarkLayout_All(b *testing.B) {
	l := benchLayout(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range l.All() {
		}
	}
}
