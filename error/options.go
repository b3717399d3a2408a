package error

// Option configures an Error during construction via E().
type Option func(*Error)

// defaultCode is the code used when constructing errors via E without WithCode.
const defaultCode = 0

// WithCode sets the numeric code for the error during E() construction.
func WithCode(code int) Option { return func(e *Error) { e.code = code } }

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// E is a minimal builder when you don’t want the full New(...) signature.
// Defaults: Code=0, no cause.
func E(message string, opts ...Option) *Error {
	e := &Error{
		message: message,
		code:    defaultCode,
	}
	for _, o := range opts {
		o(e)
	}

	return e
}
