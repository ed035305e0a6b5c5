package analysis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lut/lut"
)

// SqrtRecord is one square-root sample.
type SqrtRecord struct {
	Input    float64 `csv:"input"`
	Approx   float64 `csv:"approx"`
	Exact    float64 `csv:"exact"`
	AbsError float64 `csv:"abs_error"`
	Bound    float64 `csv:"bound"`
}

// SqrtSweep samples Sqrt log-uniformly over [1, 10^decades) with perDecade
// points per decade, plus the input 0.
func SqrtSweep(e *lut.Engine, decades, perDecade int) ([]SqrtRecord, error) {
	if decades <= 0 || perDecade <= 0 {
		return nil, fmt.Errorf("sqrt sweep %dx%d: %w", decades, perDecade, ErrEmptySweep)
	}

	out := make([]SqrtRecord, 0, decades*perDecade+1)
	out = append(out, sqrtRecord(e, 0))
	for d := 0; d < decades; d++ {
		for j := 0; j < perDecade; j++ {
			v := math.Pow(10, float64(d)+float64(j)/float64(perDecade))
			out = append(out, sqrtRecord(e, float32(v)))
		}
	}
	return out, nil
}

func sqrtRecord(e *lut.Engine, v float32) SqrtRecord {
	approx := float64(e.Sqrt(v))
	exact := math.Sqrt(float64(v))
	return SqrtRecord{
		Input:    float64(v),
		Approx:   approx,
		Exact:    exact,
		AbsError: math.Abs(approx - exact),
		Bound:    float64(lut.SqrtErrorBound(v)),
	}
}

// SummarizeSqrt aggregates a square-root sweep.
func SummarizeSqrt(records []SqrtRecord) (Summary, error) {
	approx := make([]float64, len(records))
	exact := make([]float64, len(records))
	for i, r := range records {
		approx[i] = r.Approx
		exact[i] = r.Exact
	}
	return Summarize("sqrt", approx, exact)
}

// TrigRecord is one sine/cosine sample.
type TrigRecord struct {
	Angle    float64 `csv:"angle"`
	Sin      float64 `csv:"sin"`
	ExactSin float64 `csv:"exact_sin"`
	Cos      float64 `csv:"cos"`
	ExactCos float64 `csv:"exact_cos"`
	Residual float64 `csv:"residual"` // sin²+cos²−1 of the table values
}

// TrigSweep samples Sin and Cos at n angles spread over [0, 2π). The angles
// are offset from the table grid so every sample sees truncation error.
func TrigSweep(e *lut.Engine, n int) ([]TrigRecord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("trig sweep %d: %w", n, ErrEmptySweep)
	}

	out := make([]TrigRecord, n)
	for i := range out {
		a := float32((float64(i) + 0.37) * 2 * math.Pi / float64(n))
		s, c := float64(e.Sin(a)), float64(e.Cos(a))
		out[i] = TrigRecord{
			Angle:    float64(a),
			Sin:      s,
			ExactSin: math.Sin(float64(a)),
			Cos:      c,
			ExactCos: math.Cos(float64(a)),
			Residual: s*s + c*c - 1,
		}
	}
	return out, nil
}

// SummarizeTrig aggregates a trig sweep into sin, cos and identity summaries.
func SummarizeTrig(records []TrigRecord) ([]Summary, error) {
	n := len(records)
	sin, exactSin := make([]float64, n), make([]float64, n)
	cos, exactCos := make([]float64, n), make([]float64, n)
	ident, ones := make([]float64, n), make([]float64, n)
	for i, r := range records {
		sin[i], exactSin[i] = r.Sin, r.ExactSin
		cos[i], exactCos[i] = r.Cos, r.ExactCos
		ident[i], ones[i] = r.Residual+1, 1
	}

	var out []Summary
	for _, set := range []struct {
		name          string
		approx, exact []float64
	}{
		{"sin", sin, exactSin},
		{"cos", cos, exactCos},
		{"sin2+cos2", ident, ones},
	} {
		s, err := Summarize(set.name, set.approx, set.exact)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
