package testutil

import (
	"math"
	"math/rand"
)

// DeterministicAngles returns n angles uniformly spread over [-span, span)
// from a fixed seed.
func DeterministicAngles(seed int64, span float64, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * span)
	}
	return out
}

// BinCenters returns the centre angle of every bin of an n-entry trig table.
// Centres sit half a step away from both bin edges, so small float32 rounding
// cannot move them into a neighbouring bin.
func BinCenters(n int) []float32 {
	out := make([]float32, n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		out[i] = float32((float64(i) + 0.5) * step)
	}
	return out
}

// LogSpaced returns n values spread log-uniformly over [lo, hi).
func LogSpaced(lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	if n == 0 || lo <= 0 || hi <= lo {
		return out
	}
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = float32(lo * math.Exp(ratio*float64(i)/float64(n)))
	}
	return out
}
