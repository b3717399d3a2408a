package error

import (
	"errors"
	"reflect"
)

// Codes assigned by the canonical factories. All other values are caller-defined.
const (
	CodeException = -1
	CodeNullValue = -2
)

// FromException captures fault as an Error with code CodeException.
// A nil fault is replaced by an opaque "unknown" cause.
func FromException(fault error) *Error {
	if fault == nil {
		fault = errors.New("unknown")
	}

	return New("Exception: "+fault.Error(), CodeException, fault)
}

// NullValue reports that a result of the named type turned out to be nil.
func NullValue(typeName string) *Error {
	return New("Result value of type "+typeName+" was null", CodeNullValue)
}

// NullValueOf is NullValue named after T.
func NullValueOf[T any]() *Error {
	return NullValue(typeName(reflect.TypeFor[T]()))
}

// typeName prefers the declared name; unnamed types (*int, []string) use their literal form.
func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}
