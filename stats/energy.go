package stats

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/kapteenimuttipolpa/embedded-utils/seq"
)

// blockThreshold is the length above which float64 inputs are squared
// through the vecmath block kernel instead of the scalar loop.
const blockThreshold = 64

// scratchBuf holds pooled scratch memory for the squared input.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// Energy returns the sum of squares of xs. Returns 0 for an empty slice.
func Energy[T Real](xs []T) float64 {
	if f, ok := any(xs).([]float64); ok && len(f) >= blockThreshold {
		return energyBlock(f)
	}

	var sum, c float64
	for _, x := range xs {
		v := float64(x)
		y := v*v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// RMS returns the root-mean-square of xs. Returns 0 for an empty slice.
func RMS[T Real](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}

	return math.Sqrt(Energy(xs) / float64(len(xs)))
}

// energyBlock computes the sum of squares through the vecmath
// element-wise multiply kernel, using pooled scratch for the squared
// values.
func energyBlock(x []float64) float64 {
	buf := scratchPool.Get().(*scratchBuf)
	buf.data = seq.EnsureLen(buf.data, len(x))

	vecmath.MulBlock(buf.data, x, x)
	sum := Sum(buf.data)

	scratchPool.Put(buf)

	return sum
}
