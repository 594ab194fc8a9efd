// Package stats provides arithmetic means and related single-pass
// measures over numeric slices.
//
// All accumulation happens in float64 starting from zero, regardless of
// the element type. Mean is undefined on an empty sequence and reports
// that through fail.Raise (or panics, in the Must variant); the
// remaining measures return 0 for an empty slice.
//
// For []float64 inputs above a small size threshold, Energy and RMS
// square the input through vecmath block kernels instead of the scalar
// loop.
package stats
