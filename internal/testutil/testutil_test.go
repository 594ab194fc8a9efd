package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d != 1 {
		t.Errorf("got %v, want 1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(4), []float64{0, 1, 2, 3}, 0)
}

func TestConst(t *testing.T) {
	RequireSlicesEqual(t, Const(2.5, 3), []float64{2.5, 2.5, 2.5})
}
