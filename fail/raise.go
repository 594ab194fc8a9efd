package fail

import "fmt"

// Raisef formats an error and passes it through Raise.
func Raisef(format string, args ...any) error {
	return Raise(fmt.Errorf(format, args...))
}
