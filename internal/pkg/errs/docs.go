// Package errs provides the typed error catalogue shared by the storefront
// domain, use cases and adapters.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New… and New…WithCause constructors
//   - Unwrap returning the sentinel, so callers classify failures without
//     inspecting messages
//
// ErrVersionIsInvalid doubles as the optimistic-concurrency conflict signal:
// a repository returns it when the stored aggregate version no longer matches
// the version the caller loaded.
package errs
