package lut

import (
	"fmt"
	"math"
)

// Sqrt returns an approximate square root of v.
//
// Inputs of 100 and above are divided by 100 until they fit the table while
// the result scale is multiplied by 10. The reduced value is truncated, so the
// result is p·sqrt(floor(v/p²)) and never exceeds the exact root.
//
// Negative and NaN input return NaN; +Inf returns +Inf.
func (e *Engine) Sqrt(v float32) float32 {
	e.mustReady()

	switch {
	case v != v || v < 0:
		return float32(math.NaN())
	case math.IsInf(float64(v), 1):
		return v
	}

	p := float32(1)
	for v >= RootSize {
		v /= RootSize
		p *= 10
	}
	return e.region.root(int(v)) * p
}

// CheckedSqrt is Sqrt with explicit errors for input outside [0, +Inf).
func (e *Engine) CheckedSqrt(v float32) (float32, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, v)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeInput, v)
	}
	return e.Sqrt(v), nil
}

// Hypot returns the approximate Euclidean norm Sqrt(a² + b²).
func (e *Engine) Hypot(a, b float32) float32 {
	return e.Sqrt(a*a + b*b)
}

// SqrtErrorBound returns the largest amount by which Sqrt(v) may fall below
// the exact root, ignoring float32 rounding.
func SqrtErrorBound(v float32) float32 {
	if v < RootSize {
		return 1
	}
	p := float32(1)
	for v >= RootSize {
		v /= RootSize
		p *= 10
	}
	return p * (math.Sqrt2 - 1)
}
