package result

// Bind applies transform to the value of a success and wraps the outcome with
// FromValue, so a nil outcome panics just as FromValue does. A failure is
// passed through with the same errors and transform is not called.
func Bind[T, TOut any](r Result[T], transform func(T) TOut) Result[TOut] {
	if prior, failed := r.failed(); failed {
		return Result[TOut]{state: failure{errors: prior}}
	}

	return FromValue(transform(r.state.(success[T]).value))
}

// Effect calls sideEffect with the value of a success and returns r itself.
// A failure is returned untouched and sideEffect is not called.
func (r Result[T]) Effect(sideEffect func(T)) Result[T] {
	if s, ok := r.mustState().(success[T]); ok {
		sideEffect(s.value)
	}

	return r
}
