// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must support errors.Unwrap for proper interoperability with
// standard error helpers.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Keep Message and Code fixed for the lifetime of the value.
//   - Support errors.Unwrap via Unwrap(), returning nil when there is no cause.
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal.
type Error interface {
	error
	Message() string
	Code() int
	Unwrap() error
}
