package result

import (
	"reflect"
	"slices"

	"go.uber.org/multierr"

	apiError "github.com/next-trace/scg-result/error"
)

// Result is either a success carrying a value of type T or a failure carrying
// a non-empty sequence of errors. The zero Result holds neither and is only
// useful as a placeholder; build Results with the constructors below.
type Result[T any] struct {
	state state[T]
}

// state is sealed: success and failure are the only variants.
type state[T any] interface {
	sealed()
}

type success[T any] struct {
	value T
}

type failure struct {
	errors []*apiError.Error
}

func (success[T]) sealed() {}
func (failure) sealed()    {}

// FromValue wraps item as a success. It panics with an ArgumentError if item
// is nil.
func FromValue[T any](item T) Result[T] {
	if isNil(item) {
		panic(ArgumentError.Wrap(ErrNilValue))
	}

	return Result[T]{state: success[T]{value: item}}
}

// FromError wraps a single error as a failure.
func FromError[T any](err *apiError.Error) Result[T] {
	return FromErrors[T](err)
}

// FromErrors wraps errs, in order, as a failure. It panics with an
// ArgumentError if errs is empty or contains nil.
func FromErrors[T any](errs ...*apiError.Error) Result[T] {
	if len(errs) == 0 {
		panic(ArgumentError.Wrap(ErrNoErrors))
	}

	if slices.Contains(errs, nil) {
		panic(ArgumentError.Wrap(ErrNilError))
	}

	return Result[T]{state: failure{errors: slices.Clone(errs)}}
}

// Ok is shorthand for FromValue.
func Ok[T any](item T) Result[T] { return FromValue(item) }

// Fail is shorthand for FromError.
func Fail[T any](err *apiError.Error) Result[T] { return FromError[T](err) }

// FromGo converts a conventional (value, error) pair. A non-nil err becomes a
// failure through error.Ensure; otherwise v must be non-nil.
func FromGo[T any](v T, err error) Result[T] {
	if err != nil {
		return FromError[T](apiError.Ensure(err))
	}

	return FromValue(v)
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	_, ok := r.state.(success[T])
	return ok
}

// Errors returns a copy of the failure's errors, or nil for a success.
func (r Result[T]) Errors() []*apiError.Error {
	if f, ok := r.state.(failure); ok {
		return slices.Clone(f.errors)
	}

	return nil
}

// Err returns nil for a success and the combined errors otherwise.
func (r Result[T]) Err() error {
	switch s := r.mustState().(type) {
	case failure:
		errs := make([]error, len(s.errors))
		for i, e := range s.errors {
			errs[i] = e
		}

		return multierr.Combine(errs...)
	default:
		return nil
	}
}

// Unwrap returns the success value. On a failure it returns an
// InvalidStateError wrapping ErrNoValue.
func (r Result[T]) Unwrap() (T, error) {
	if s, ok := r.mustState().(success[T]); ok {
		return s.value, nil
	}

	var zero T

	return zero, InvalidStateError.Wrap(ErrNoValue)
}

// MustUnwrap is like Unwrap but panics on a failure.
func (r Result[T]) MustUnwrap() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}

	return v
}

func (r Result[T]) mustState() state[T] {
	if r.state == nil {
		panic(InvalidStateError.Wrap(ErrUninitialized))
	}

	return r.state
}

// failed returns the errors of a failure for reuse by another Result.
// The slice is never handed out, so sharing it keeps both Results immutable.
func (r Result[T]) failed() ([]*apiError.Error, bool) {
	f, ok := r.mustState().(failure)
	return f.errors, ok
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
