//go:build !failabort

package fail

import (
	"errors"
	"testing"
)

func TestRaiseReturnsSameError(t *testing.T) {
	want := errors.New("boom")

	if got := Raise(want); got != want {
		t.Errorf("Raise: got %v, want %v", got, want)
	}
}

func TestRaiseNil(t *testing.T) {
	if got := Raise(nil); got != nil {
		t.Errorf("Raise(nil): got %v, want nil", got)
	}
}

func TestRaisefWrapsSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := Raisef("%w: start 7, source length 4", sentinel)
	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is: got false, want true for %v", err)
	}

	want := "sentinel: start 7, source length 4"
	if err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}

func TestRecoverableFlag(t *testing.T) {
	if !Recoverable {
		t.Error("default build must report Recoverable = true")
	}
}
