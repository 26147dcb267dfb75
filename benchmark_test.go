package effects

import (
	"fmt"
	"runtime"
	"testing"
)

const (
	benchWidth  = 640
	benchHeight = 480
)

func BenchmarkPlasmaDraw(b *testing.B) {
	for s := Shape(0); s < numShapes; s++ {
		b.Run(s.String(), func(b *testing.B) {
			p, err := NewPlasma(benchWidth, benchHeight, s, PaletteRainbow)
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]uint32, benchWidth*benchHeight)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.Draw(buf, float64(i)*0.016); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPlasmaDraw_Workers(b *testing.B) {
	counts := []int{1, 2, 4, runtime.NumCPU()}
	for _, workers := range counts {
		b.Run(fmt.Sprintf("%dworkers", workers), func(b *testing.B) {
			p, err := NewPlasma(benchWidth, benchHeight, ShapeSpiral, PaletteRainbow, WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			defer p.Close()
			buf := make([]uint32, benchWidth*benchHeight)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.Draw(buf, float64(i)*0.016); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkHSVToRGB(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := float64(i%720) - 180
		HSVToRGB(h, 0.8, 1)
	}
}
