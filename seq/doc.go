// Package seq provides strided-copy operations over slices.
//
// A slice is treated as a non-owning view of caller-owned storage:
// nothing in this package allocates or retains backing arrays, with the
// exception of the EveryNth convenience wrapper, which allocates its
// result.
//
// Every operation comes in two variants sharing the same capacity
// arithmetic (RequiredLen):
//   - checked (CopyEveryNth, EveryNth): bounds are validated at call
//     time and violations reported through fail.Raise
//   - Must (MustCopyEveryNth): bounds are part of the caller's
//     contract; violations panic and the happy path carries no error
//     value
//
// A stride that is not strictly positive is a programmer error in every
// configuration and panics in both variants.
package seq
