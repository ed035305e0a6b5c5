package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff32(t *testing.T) {
	a := []float32{1.0, 2.0, 3.0}
	b := []float32{1.0, 2.5, 3.0}

	d, err := MaxAbsDiff32(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff32 error: %v", err)
	}

	if math.Abs(d-0.5) > 1e-7 {
		t.Fatalf("MaxAbsDiff32 = %v, want 0.5", d)
	}
}

func TestMaxAbsDiff32LengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff32([]float32{1}, []float32{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiff32Identical(t *testing.T) {
	a := []float32{1, 2, 3}

	d, err := MaxAbsDiff32(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff32 error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff32 = %v, want 0 for identical slices", d)
	}
}
