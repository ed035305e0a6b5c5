package lut

import (
	"math"
	"strconv"
	"testing"
)

var sink float32

func BenchmarkSin(b *testing.B) {
	e := MustNew()
	b.Run("lookup", func(b *testing.B) {
		var sum float32
		for i := range b.N {
			sum += e.Sin(float32(i))
		}
		sink = sum
	})
	b.Run("math", func(b *testing.B) {
		var sum float32
		for i := range b.N {
			sum += float32(math.Sin(float64(i)))
		}
		sink = sum
	})
}

func BenchmarkSqrt(b *testing.B) {
	e := MustNew()
	for _, limit := range []int{100, 10000, 1000000} {
		b.Run(strconv.Itoa(limit), func(b *testing.B) {
			var sum float32
			for i := range b.N {
				sum += e.Sqrt(float32(i % limit))
			}
			sink = sum
		})
	}
}

func BenchmarkHypot(b *testing.B) {
	e := MustNew()
	var sum float32
	for i := range b.N {
		x := float32(i & 15)
		sum += e.Hypot(x, 15-x)
	}
	sink = sum
}
