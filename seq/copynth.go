package seq

import "fmt"

// RequiredLen returns the number of elements a strided copy selects
// from a source of length srcLen: ceil((srcLen-start)/stride), or 0
// when start >= srcLen. Both the checked and Must variants size their
// validation from this one computation so the two paths cannot
// diverge. Panics if stride <= 0.
func RequiredLen(srcLen, start, stride int) int {
	if stride <= 0 {
		panic("seq: stride must be > 0")
	}

	if start >= srcLen {
		return 0
	}

	return (srcLen - start + stride - 1) / stride
}

// CopyEveryNth copies src[start], src[start+stride], ... into
// consecutive positions of dst and returns the number of elements
// written.
//
// start must lie in [0, len(src)]; start == len(src) is valid and
// copies nothing. dst must hold at least RequiredLen elements.
// Violations are reported through fail.Raise. Panics if stride <= 0.
func CopyEveryNth[T any](dst, src []T, stride, start int) (int, error) {
	if stride <= 0 {
		panic("seq: stride must be > 0")
	}

	if err := validateStart(len(src), start); err != nil {
		return 0, err
	}

	if err := validateCapacity(RequiredLen(len(src), start, stride), len(dst)); err != nil {
		return 0, err
	}

	return copyEveryNth(dst, src, stride, start), nil
}

// MustCopyEveryNth is CopyEveryNth for call sites whose bounds are
// established by construction: violations panic instead of producing
// an error.
func MustCopyEveryNth[T any](dst, src []T, stride, start int) int {
	if stride <= 0 {
		panic("seq: stride must be > 0")
	}

	if start < 0 || start > len(src) {
		panic(fmt.Sprintf("seq: invalid start index %d for source length %d", start, len(src)))
	}

	if need := RequiredLen(len(src), start, stride); len(dst) < need {
		panic(fmt.Sprintf("seq: destination too small: need %d, have %d", need, len(dst)))
	}

	return copyEveryNth(dst, src, stride, start)
}

// EveryNth returns a freshly allocated slice holding every stride-th
// element of src starting at start. One-shot convenience around
// CopyEveryNth for callers that do not manage destination storage.
func EveryNth[T any](src []T, stride, start int) ([]T, error) {
	if stride <= 0 {
		panic("seq: stride must be > 0")
	}

	if err := validateStart(len(src), start); err != nil {
		return nil, err
	}

	out := make([]T, RequiredLen(len(src), start, stride))
	copyEveryNth(out, src, stride, start)

	return out, nil
}

// copyEveryNth performs the strided copy shared by all variants. The
// destination bound is checked defensively even though callers have
// already validated capacity.
func copyEveryNth[T any](dst, src []T, stride, start int) int {
	n := 0
	for i := start; i < len(src) && n < len(dst); i += stride {
		dst[n] = src[i]
		n++
	}

	return n
}
