package analysis

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-lut/field"
	"github.com/cwbudde/algo-lut/internal/testutil"
	"github.com/cwbudde/algo-lut/lut"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize("x", []float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Count != 3 {
		t.Fatalf("Count = %d, want 3", s.Count)
	}
	testutil.RequireNear(t, "mean", s.MeanAbsError, 0.5, 1e-12)
	testutil.RequireNear(t, "std", s.StdAbsError, 0.5, 1e-12)
	testutil.RequireNear(t, "max", s.MaxAbsError, 1, 1e-12)
	testutil.RequireNear(t, "rel", s.MaxRelError, 0.5, 1e-12)
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize("x", nil, nil); !errors.Is(err, ErrEmptySweep) {
		t.Fatalf("empty err = %v", err)
	}
	if _, err := Summarize("x", []float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestSqrtSweepWithinBound(t *testing.T) {
	e := lut.MustNew()
	recs, err := SqrtSweep(e, 5, 40)
	if err != nil {
		t.Fatalf("SqrtSweep: %v", err)
	}
	if len(recs) != 5*40+1 {
		t.Fatalf("len = %d, want %d", len(recs), 5*40+1)
	}
	if recs[0].Input != 0 || recs[0].Approx != 0 {
		t.Fatalf("first record = %+v, want sqrt(0) = 0", recs[0])
	}
	for _, r := range recs {
		if r.AbsError > r.Bound+1e-5*r.Exact {
			t.Fatalf("input %v: error %v exceeds bound %v", r.Input, r.AbsError, r.Bound)
		}
	}

	s, err := SummarizeSqrt(recs)
	if err != nil {
		t.Fatalf("SummarizeSqrt: %v", err)
	}
	if s.MaxAbsError <= 0 || s.MaxAbsError > 1e4*(math.Sqrt2-1)+1 {
		t.Fatalf("max abs error = %v", s.MaxAbsError)
	}

	if _, err := SqrtSweep(e, 0, 10); !errors.Is(err, ErrEmptySweep) {
		t.Fatalf("SqrtSweep(0) err = %v", err)
	}
}

func TestTrigSweep(t *testing.T) {
	e := lut.MustNew()
	recs, err := TrigSweep(e, 1000)
	if err != nil {
		t.Fatalf("TrigSweep: %v", err)
	}

	step := 2 * math.Pi / lut.DefaultTrigSize
	for _, r := range recs {
		if math.Abs(r.Residual) > 1e-6 {
			t.Fatalf("angle %v: residual %v", r.Angle, r.Residual)
		}
		testutil.RequireNear(t, "sin", r.Sin, r.ExactSin, step+1e-6)
		testutil.RequireNear(t, "cos", r.Cos, r.ExactCos, step+1e-6)
	}

	sums, err := SummarizeTrig(recs)
	if err != nil {
		t.Fatalf("SummarizeTrig: %v", err)
	}
	if len(sums) != 3 || sums[0].Name != "sin" || sums[2].Name != "sin2+cos2" {
		t.Fatalf("summaries = %+v", sums)
	}
	if sums[0].MaxAbsError > step+1e-6 {
		t.Fatalf("sin max error %v > step %v", sums[0].MaxAbsError, step)
	}
}

func TestSpectrum(t *testing.T) {
	rep, err := Spectrum(lut.MustNew(), 4096, 37)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if rep.CarrierBin != 37 {
		t.Fatalf("carrier bin = %d", rep.CarrierBin)
	}
	if rep.CarrierPower <= rep.SpurPower {
		t.Fatalf("carrier %v not above spur %v", rep.CarrierPower, rep.SpurPower)
	}
	if rep.SFDRdB < 30 {
		t.Fatalf("SFDR = %v dB, want >= 30", rep.SFDRdB)
	}
}

func TestSpectrumImprovesWithTableSize(t *testing.T) {
	small, err := Spectrum(lut.MustNew(), 4096, 37)
	if err != nil {
		t.Fatalf("Spectrum(256): %v", err)
	}
	large, err := Spectrum(lut.MustNew(lut.WithTrigSize(4096)), 4096, 37)
	if err != nil {
		t.Fatalf("Spectrum(4096): %v", err)
	}
	if large.SFDRdB < small.SFDRdB+10 {
		t.Fatalf("SFDR 4096-entry table %v dB not clearly above 256-entry %v dB", large.SFDRdB, small.SFDRdB)
	}
}

func TestSpectrumRejectsBadSizes(t *testing.T) {
	e := lut.MustNew()
	for _, tc := range []struct{ size, cycles int }{
		{4, 1},
		{64, 0},
		{64, 32},
	} {
		if _, err := Spectrum(e, tc.size, tc.cycles); err == nil {
			t.Fatalf("Spectrum(%d, %d): expected error", tc.size, tc.cycles)
		}
	}
}

func TestCompareRendersIdentical(t *testing.T) {
	e := lut.MustNew()
	r, err := field.New(e)
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}

	diffs, err := CompareRenders(r, r, FrameRange(0, 10, 3))
	if err != nil {
		t.Fatalf("CompareRenders: %v", err)
	}
	for _, d := range diffs {
		if d.Differing != 0 || d.MaxDelta != 0 || d.Cells != 256 {
			t.Fatalf("self comparison differs: %+v", d)
		}
	}
}

func TestCompareRendersLookupVsExact(t *testing.T) {
	e := lut.MustNew()
	lookup, err := field.New(e)
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}
	exact, err := field.New(e, field.WithPrimitives(field.Exact()))
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}

	diffs, err := CompareRenders(lookup, exact, FrameRange(0, 60, 10))
	if err != nil {
		t.Fatalf("CompareRenders: %v", err)
	}
	var frac float64
	for _, d := range diffs {
		if d.MaxDelta > lut.MaxLevel {
			t.Fatalf("frame %d: delta %d", d.Frame, d.MaxDelta)
		}
		frac += d.Fraction()
	}
	if avg := frac / float64(len(diffs)); avg > 0.5 {
		t.Fatalf("lookup and exact differ on %.0f%% of cells on average", 100*avg)
	}

	if _, err := CompareRenders(lookup, exact, nil); !errors.Is(err, ErrEmptySweep) {
		t.Fatalf("CompareRenders(nil) err = %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Summary{{Name: "sqrt", Count: 3, MaxAbsError: 0.25}})
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "name,count,mean_abs_error") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "sqrt,3,") {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestRun(t *testing.T) {
	rep, err := Run(lut.MustNew(), DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Summaries) != 4 {
		t.Fatalf("summaries = %d, want 4", len(rep.Summaries))
	}
	if len(rep.Frames) != DefaultOptions().Frames {
		t.Fatalf("frames = %d", len(rep.Frames))
	}
	if rep.RenderDelta.Count != DefaultOptions().Frames*256 {
		t.Fatalf("render delta count = %d", rep.RenderDelta.Count)
	}
}

func TestFrameRange(t *testing.T) {
	got := FrameRange(10, 4, 5)
	want := []int{10, 15, 20, 25}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FrameRange = %v, want %v", got, want)
		}
	}
	if FrameRange(0, 0, 1) != nil {
		t.Fatal("FrameRange with n=0 not nil")
	}
}
