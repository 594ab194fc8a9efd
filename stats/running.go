package stats

import (
	"fmt"

	"github.com/kapteenimuttipolpa/embedded-utils/fail"
)

// Running accumulates mean and variance incrementally across blocks of
// samples using Welford's update, so block-wise processing agrees with
// the one-shot measures without retaining the sequence.
type Running[T Real] struct {
	n    int
	mean float64
	m2   float64
}

// NewRunning creates a new Running accumulator.
func NewRunning[T Real]() *Running[T] {
	return &Running[T]{}
}

// Update adds a block of samples to the running accumulator.
func (r *Running[T]) Update(xs []T) {
	for _, x := range xs {
		r.n++

		v := float64(x)
		delta := v - r.mean
		r.mean += delta / float64(r.n)
		r.m2 += delta * (v - r.mean)
	}
}

// Count returns the number of samples accumulated so far.
func (r *Running[T]) Count() int {
	return r.n
}

// Mean returns the mean of all accumulated samples. With no samples
// accumulated it is undefined and reported through fail.Raise as
// ErrEmptySource.
func (r *Running[T]) Mean() (float64, error) {
	if r.n == 0 {
		return 0, fail.Raise(fmt.Errorf("%w: no samples accumulated", ErrEmptySource))
	}

	return r.mean, nil
}

// Variance returns the population variance of all accumulated samples.
// Returns 0 with fewer than two samples.
func (r *Running[T]) Variance() float64 {
	if r.n < 2 {
		return 0
	}

	return r.m2 / float64(r.n)
}

// Reset clears all accumulated data, allowing the Running to be reused.
func (r *Running[T]) Reset() {
	*r = Running[T]{}
}
