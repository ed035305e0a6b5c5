package lut

import "math"

// TrigIndex maps angle (radians) to a table index in [0, TrigSize) using
// ((angle/2π·N) mod N + N) mod N followed by truncation. It returns -1 for
// non-finite angles.
func (e *Engine) TrigIndex(angle float32) int {
	a := float64(angle)
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return -1
	}

	n := float64(e.cfg.TrigSize)
	pos := math.Mod(a*e.trigScale, n)
	pos = math.Mod(pos+n, n)
	return int(pos)
}

// Sin returns the sine of angle quantized to the table resolution.
// Non-finite angles return NaN.
func (e *Engine) Sin(angle float32) float32 {
	e.mustReady()
	i := e.TrigIndex(angle)
	if i < 0 {
		return float32(math.NaN())
	}
	return e.region.sin(i)
}

// Cos returns the cosine of angle quantized to the table resolution.
// Non-finite angles return NaN.
func (e *Engine) Cos(angle float32) float32 {
	e.mustReady()
	i := e.TrigIndex(angle)
	if i < 0 {
		return float32(math.NaN())
	}
	return e.region.cos(i)
}
