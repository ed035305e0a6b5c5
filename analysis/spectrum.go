package analysis

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lut/lut"
)

// SpectrumReport describes the spectral purity of a table-driven oscillator.
type SpectrumReport struct {
	Size         int     `csv:"size"`
	Cycles       int     `csv:"cycles"`
	CarrierBin   int     `csv:"carrier_bin"`
	CarrierPower float64 `csv:"carrier_power"`
	SpurBin      int     `csv:"spur_bin"`
	SpurPower    float64 `csv:"spur_power"`
	SFDRdB       float64 `csv:"sfdr_db"` // spurious-free dynamic range
}

// Spectrum drives Sin at cycles periods per size samples, transforms the
// result and reports the carrier against the strongest other bin up to
// Nyquist (DC excluded). An integer cycle count keeps the window periodic, so
// every spur comes from table quantization rather than leakage.
func Spectrum(e *lut.Engine, size, cycles int) (SpectrumReport, error) {
	if size < 8 {
		return SpectrumReport{}, fmt.Errorf("spectrum size must be >= 8: %d", size)
	}
	if cycles < 1 || cycles >= size/2 {
		return SpectrumReport{}, fmt.Errorf("spectrum cycles must be in [1,%d): %d", size/2, cycles)
	}

	in := make([]complex128, size)
	step := 2 * math.Pi * float64(cycles) / float64(size)
	for i := range in {
		in[i] = complex(float64(e.Sin(float32(step*float64(i)))), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return SpectrumReport{}, fmt.Errorf("fft plan %d: %w", size, err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return SpectrumReport{}, fmt.Errorf("fft forward: %w", err)
	}

	half := size/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := 0; k < half; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, half)
	vecmath.Power(power, re, im)

	rep := SpectrumReport{
		Size:         size,
		Cycles:       cycles,
		CarrierBin:   cycles,
		CarrierPower: power[cycles],
	}
	for k := 1; k < half; k++ {
		if k == cycles {
			continue
		}
		if power[k] > rep.SpurPower {
			rep.SpurPower = power[k]
			rep.SpurBin = k
		}
	}

	switch {
	case rep.SpurPower == 0:
		rep.SFDRdB = math.Inf(1)
	case rep.CarrierPower == 0:
		rep.SFDRdB = math.Inf(-1)
	default:
		rep.SFDRdB = 10 * math.Log10(rep.CarrierPower/rep.SpurPower)
	}
	return rep, nil
}
