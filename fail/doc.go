// Package fail provides the error-signaling primitive shared by all
// call-time validation in this module.
//
// In the default build, Raise hands the error back to the caller for
// ordinary Go error propagation. Building with the "failabort" tag
// replaces that behavior with immediate process termination, for
// constrained targets where recoverable error handling is unavailable
// or unwanted. The choice is made once per build, never per call; the
// Recoverable constant reports which behavior the current binary
// carries.
package fail
