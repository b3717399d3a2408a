package result

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error classes for programmer errors. Panic values and errors returned by
// Unwrap belong to one of these classes and wrap one of the sentinels below.
var (
	ArgumentError     = errs.Class("argument")
	InvalidStateError = errs.Class("invalid state")
)

var (
	ErrNilValue      = errors.New("null is not a valid Result value")
	ErrNoErrors      = errors.New("errors cannot be empty")
	ErrNilError      = errors.New("error cannot be nil")
	ErrNoValue       = errors.New("value of result is null")
	ErrUninitialized = errors.New("result is not initialized")
	ErrGoexit        = errors.New("transform exited without returning")
)
