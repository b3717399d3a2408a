package error

import (
	"fmt"

	"github.com/next-trace/scg-result/contract"
)

// Error describes one reason an operation did not succeed.
//
// Fields:
//   - Message: human-readable description
//   - Code:    caller-defined numeric code
//   - Cause:   optional originating fault, exposed through Unwrap
type Error struct {
	message string
	code    int
	cause   error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s (%d)", e.message, e.code)
}

func (e *Error) Unwrap() error { return e.cause }

// ------ contract.Error getters

func (e *Error) Message() string { return e.message }
func (e *Error) Code() int       { return e.code }

// ------ core constructors

// New creates a new Error storing message and code verbatim.
// The optional cause parameter (if provided) is stored and exposed via Unwrap().
func New(message string, code int, cause ...error) *Error {
	e := &Error{
		message: message,
		code:    code,
	}
	if len(cause) > 0 {
		e.cause = cause[0]
	}

	return e
}
