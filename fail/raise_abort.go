//go:build failabort

package fail

import (
	"fmt"
	"os"
)

// Recoverable reports that this build terminates the process on failure.
const Recoverable = false

// Raise writes err to stderr and terminates the process. It never
// returns control to the caller; the error result exists only so call
// sites compile identically in both build configurations.
func Raise(err error) error {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)

	return err
}
