package seq

import (
	"errors"
	"fmt"

	"github.com/kapteenimuttipolpa/embedded-utils/fail"
)

var (
	// ErrStartIndex indicates a start index outside the source bounds.
	ErrStartIndex = errors.New("seq: invalid start index")
	// ErrDestinationTooSmall indicates a destination shorter than RequiredLen.
	ErrDestinationTooSmall = errors.New("seq: destination too small")
)

func validateStart(srcLen, start int) error {
	if start < 0 || start > srcLen {
		return fail.Raise(fmt.Errorf("%w: start %d, source length %d", ErrStartIndex, start, srcLen))
	}
	return nil
}

func validateCapacity(need, dstLen int) error {
	if dstLen < need {
		return fail.Raise(fmt.Errorf("%w: need %d, have %d", ErrDestinationTooSmall, need, dstLen))
	}
	return nil
}
