package field

// Smoothstep returns u²(3−2u) for u = clamp((d−low)/(high−low), 0, 1).
// NaN maps to 0.
func Smoothstep(d, low, high float32) float32 {
	if !(d > low) {
		return 0
	}
	if d >= high {
		return 1
	}
	u := (d - low) / (high - low)
	return u * u * (3 - 2*u)
}

// Quantize maps intensity d to a level in [0, levels-1] through Smoothstep.
func Quantize(d, low, high float32, levels int) uint8 {
	if levels <= 1 {
		return 0
	}
	lvl := int(Smoothstep(d, low, high) * float32(levels))
	if lvl > levels-1 {
		lvl = levels - 1
	}
	return uint8(lvl)
}
