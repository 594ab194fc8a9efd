//go:build !failabort

package fail

// Recoverable reports that this build propagates failures as errors.
const Recoverable = true

// Raise returns err unchanged so the caller can propagate it.
func Raise(err error) error {
	return err
}
