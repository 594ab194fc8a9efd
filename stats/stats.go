package stats

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/kapteenimuttipolpa/embedded-utils/fail"
)

// Real is the element constraint for all measures in this package.
type Real interface {
	constraints.Integer | constraints.Float
}

// ErrEmptySource indicates a measure that is undefined on an empty sequence.
var ErrEmptySource = errors.New("stats: empty source")

// Sum returns the sum of all elements using Kahan-compensated float64
// accumulation. Returns 0 for an empty slice.
func Sum[T Real](xs []T) float64 {
	var sum, c float64
	for _, x := range xs {
		y := float64(x) - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// Mean returns the arithmetic mean of xs. An empty source is reported
// through fail.Raise as ErrEmptySource.
func Mean[T Real](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, fail.Raise(fmt.Errorf("%w: mean is undefined", ErrEmptySource))
	}

	return Sum(xs) / float64(len(xs)), nil
}

// MustMean is Mean for call sites whose length is established by
// construction: an empty source panics instead of producing an error.
func MustMean[T Real](xs []T) float64 {
	if len(xs) == 0 {
		panic("stats: empty source")
	}

	return Sum(xs) / float64(len(xs))
}

// Peak returns the peak absolute value of xs. Returns 0 for an empty slice.
func Peak[T Real](xs []T) float64 {
	var peak float64
	for _, x := range xs {
		a := math.Abs(float64(x))
		if a > peak {
			peak = a
		}
	}

	return peak
}

// MinMax returns the minimum and maximum elements of xs along with the
// index of their first occurrence. Returns zero values for an empty
// slice.
func MinMax[T Real](xs []T) (minVal, maxVal T, minPos, maxPos int) {
	if len(xs) == 0 {
		return
	}

	minVal, maxVal = xs[0], xs[0]

	for i, x := range xs {
		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	return minVal, maxVal, minPos, maxPos
}
