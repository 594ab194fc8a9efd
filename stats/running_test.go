package stats

import (
	"errors"
	"testing"
)

func TestRunningMatchesOneShot(t *testing.T) {
	blocks := [][]float64{
		{2, 4},
		{6},
		{},
		{8, 10, 12},
	}

	r := NewRunning[float64]()

	var all []float64
	for _, b := range blocks {
		r.Update(b)
		all = append(all, b...)
	}

	want, err := Mean(all)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Mean()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(got, want, tolerance) {
		t.Errorf("running mean %g, one-shot %g", got, want)
	}

	if r.Count() != len(all) {
		t.Errorf("Count: got %d, want %d", r.Count(), len(all))
	}
}

func TestRunningEmpty(t *testing.T) {
	r := NewRunning[int]()

	if _, err := r.Mean(); !errors.Is(err, ErrEmptySource) {
		t.Errorf("err = %v, want ErrEmptySource", err)
	}
}

func TestRunningVariance(t *testing.T) {
	r := NewRunning[float64]()
	r.Update([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	// Known population variance of this sequence.
	if got := r.Variance(); !almostEqual(got, 4, tolerance) {
		t.Errorf("Variance: got %g, want 4", got)
	}
}

func TestRunningReset(t *testing.T) {
	r := NewRunning[float64]()
	r.Update([]float64{1, 2, 3})
	r.Reset()

	if r.Count() != 0 {
		t.Errorf("Count after Reset: got %d, want 0", r.Count())
	}

	if _, err := r.Mean(); !errors.Is(err, ErrEmptySource) {
		t.Errorf("err = %v, want ErrEmptySource", err)
	}
}
