package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/result"
)

type counter struct {
	value int
}

func requirePanicsWith(t *testing.T, class interface{ Has(error) bool }, sentinel error, fn func()) {
	t.Helper()

	defer func() {
		v := recover()
		require.NotNil(t, v, "expected a panic")

		err, ok := v.(error)
		require.True(t, ok, "panic value %v is not an error", v)
		require.ErrorIs(t, err, sentinel)
		require.True(t, class.Has(err), "panic %v has the wrong class", err)
	}()

	fn()
}

func TestFromValue_IsSuccessAndUnwraps(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, 2, 3, -7} {
		r := result.FromValue(v)

		require.True(t, r.IsSuccess())

		got, err := r.Unwrap()
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, v, r.MustUnwrap())
		require.Nil(t, r.Errors())
		require.NoError(t, r.Err())
	}
}

func TestFromValue_NonNilReferences(t *testing.T) {
	t.Parallel()

	c := &counter{value: 1}
	require.Same(t, c, result.FromValue(c).MustUnwrap())

	empty := []string{}
	require.True(t, result.FromValue(empty).IsSuccess())

	require.True(t, result.FromValue[error](errors.New("a value, not a failure")).IsSuccess())
}

func TestFromValue_NilPanics(t *testing.T) {
	t.Parallel()

	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.FromValue[*counter](nil) })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.FromValue[[]int](nil) })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.FromValue[map[string]int](nil) })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.FromValue[error](nil) })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.FromValue[any](nil) })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.FromValue[func()](nil) })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilValue, func() { result.Ok[chan int](nil) })

	require.Equal(t, "null is not a valid Result value", result.ErrNilValue.Error())
}

func TestFromError_IsFailure(t *testing.T) {
	t.Parallel()

	e := apiError.New("customer not found", 404)
	r := result.FromError[int](e)

	require.False(t, r.IsSuccess())
	require.Equal(t, []*apiError.Error{e}, r.Errors())
	require.Same(t, e, r.Errors()[0])

	require.False(t, result.Fail[string](e).IsSuccess())

	requirePanicsWith(t, &result.ArgumentError, result.ErrNilError, func() { result.FromError[int](nil) })
}

func TestFromErrors_PreservesOrderAndCount(t *testing.T) {
	t.Parallel()

	e1 := apiError.New("first", 1)
	e2 := apiError.New("second", 2)
	e3 := apiError.New("third", 3)

	in := []*apiError.Error{e1, e2, e3}
	r := result.FromErrors[string](in...)

	require.False(t, r.IsSuccess())
	require.Equal(t, []*apiError.Error{e1, e2, e3}, r.Errors())

	// the caller's slice and the returned copies do not alias the Result
	in[0] = e3
	got := r.Errors()
	got[1] = e1
	require.Equal(t, []*apiError.Error{e1, e2, e3}, r.Errors())
}

func TestFromErrors_EmptyPanics(t *testing.T) {
	t.Parallel()

	requirePanicsWith(t, &result.ArgumentError, result.ErrNoErrors, func() { result.FromErrors[int]() })
	requirePanicsWith(t, &result.ArgumentError, result.ErrNoErrors, func() {
		result.FromErrors[int]([]*apiError.Error{}...)
	})
	requirePanicsWith(t, &result.ArgumentError, result.ErrNilError, func() {
		result.FromErrors[int](apiError.New("ok", 1), nil)
	})

	require.Equal(t, "errors cannot be empty", result.ErrNoErrors.Error())
}

func TestUnwrap_FailureReturnsInvalidState(t *testing.T) {
	t.Parallel()

	r := result.FromError[int](apiError.New("boom", 1))

	v, err := r.Unwrap()
	require.Zero(t, v)
	require.ErrorIs(t, err, result.ErrNoValue)
	require.True(t, result.InvalidStateError.Has(err))
	require.EqualError(t, err, "invalid state: value of result is null")
	require.Equal(t, "value of result is null", result.ErrNoValue.Error())

	requirePanicsWith(t, &result.InvalidStateError, result.ErrNoValue, func() { r.MustUnwrap() })
}

func TestZeroResult(t *testing.T) {
	t.Parallel()

	var r result.Result[int]

	require.False(t, r.IsSuccess())
	require.Nil(t, r.Errors())
	requirePanicsWith(t, &result.InvalidStateError, result.ErrUninitialized, func() { _, _ = r.Unwrap() })
	requirePanicsWith(t, &result.InvalidStateError, result.ErrUninitialized, func() {
		result.Bind(r, strconv.Itoa)
	})
}

func TestErr_CombinesErrors(t *testing.T) {
	t.Parallel()

	e1 := apiError.New("first", 1)
	e2 := apiError.New("second", 2)
	err := result.FromErrors[int](e1, e2).Err()

	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)
	require.Len(t, multierr.Errors(err), 2)
}

func TestFromGo(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("42")
	r := result.FromGo(n, err)
	require.Equal(t, 42, r.MustUnwrap())

	n, err = strconv.Atoi("forty-two")
	r = result.FromGo(n, err)
	require.False(t, r.IsSuccess())
	require.Len(t, r.Errors(), 1)
	require.Equal(t, apiError.CodeException, r.Errors()[0].Code())

	known := apiError.New("customer not found", 404)
	r = result.FromGo(0, known)
	require.Same(t, known, r.Errors()[0])
}

// FuzzFromValue (no panics for non-nil values, value preserved).
func FuzzFromValue(f *testing.F) {
	f.Add("v")
	f.Add("")
	f.Fuzz(func(t *testing.T, v string) {
		r := result.FromValue(v)

		if !r.IsSuccess() || r.MustUnwrap() != v {
			t.Fatalf("FromValue(%q) did not round-trip", v)
		}
	})
}
