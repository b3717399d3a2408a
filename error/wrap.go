package error

import (
	"errors"
)

// Wrap attaches a cause to a new Error. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, code int, message string) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return New(message, code, cause)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is or wraps an *Error => that *Error is returned as-is (same pointer)
//   - otherwise the error is captured with FromException
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return FromException(err)
}
