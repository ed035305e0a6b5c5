package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptySweep is returned when a sweep or summary has no samples.
	ErrEmptySweep = errors.New("analysis: empty sweep")

	errMismatchedLength = errors.New("analysis: approx and exact must have same length")
)

// Summary aggregates the error of one approximated function.
type Summary struct {
	Name         string  `csv:"name"`
	Count        int     `csv:"count"`
	MeanAbsError float64 `csv:"mean_abs_error"`
	StdAbsError  float64 `csv:"std_abs_error"`
	MaxAbsError  float64 `csv:"max_abs_error"`
	MaxRelError  float64 `csv:"max_rel_error"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", s.Name),
		slog.Int("count", s.Count),
		slog.Float64("mean_abs_error", s.MeanAbsError),
		slog.Float64("std_abs_error", s.StdAbsError),
		slog.Float64("max_abs_error", s.MaxAbsError),
		slog.Float64("max_rel_error", s.MaxRelError),
	)
}

// Summarize compares approx against exact element-wise. Relative error is
// taken against |exact| and skipped where exact is zero.
func Summarize(name string, approx, exact []float64) (Summary, error) {
	if len(approx) != len(exact) {
		return Summary{}, fmt.Errorf("%w: %d vs %d", errMismatchedLength, len(approx), len(exact))
	}
	if len(approx) == 0 {
		return Summary{}, fmt.Errorf("%s: %w", name, ErrEmptySweep)
	}

	n := len(approx)
	neg := make([]float64, n)
	diff := make([]float64, n)
	vecmath.ScaleBlock(neg, exact, -1)
	vecmath.AddBlock(diff, approx, neg)

	abs := make([]float64, n)
	rel := make([]float64, 0, n)
	for i, d := range diff {
		abs[i] = math.Abs(d)
		if exact[i] != 0 {
			rel = append(rel, abs[i]/math.Abs(exact[i]))
		}
	}

	s := Summary{
		Name:         name,
		Count:        n,
		MeanAbsError: stat.Mean(abs, nil),
		MaxAbsError:  vecmath.MaxAbs(diff),
	}
	if n > 1 {
		s.StdAbsError = stat.StdDev(abs, nil)
	}
	if len(rel) > 0 {
		s.MaxRelError = floats.Max(rel)
	}
	return s, nil
}
