package result

import (
	"context"
)

// Task is a handle to a Result that is produced asynchronously. A Task may be
// awaited any number of times, from any goroutine. The zero Task never resolves.
type Task[T any] struct {
	s *taskState[T]
}

type taskState[T any] struct {
	done chan struct{}

	result Result[T]
	err    error

	panicked bool
	panicVal any
}

func newTask[T any]() Task[T] {
	return Task[T]{s: &taskState[T]{done: make(chan struct{})}}
}

// Resolved returns a Task that has already completed with r.
func Resolved[T any](r Result[T]) Task[T] {
	t := newTask[T]()
	t.s.resolve(r, nil)

	return t
}

// Done is closed once the Task has completed.
func (t Task[T]) Done() <-chan struct{} {
	if t.s == nil {
		return nil
	}

	return t.s.done
}

// Await blocks until the Task completes or ctx is done. The returned error is
// either ctx.Err() or a fatal fault raised while producing the Result; captured
// faults are reported inside the Result instead. A fatal panic is re-raised in
// the calling goroutine with its original value.
func (t Task[T]) Await(ctx context.Context) (Result[T], error) {
	select {
	case <-t.Done():
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}

	if t.s.panicked {
		panic(t.s.panicVal)
	}

	return t.s.result, t.s.err
}

func (s *taskState[T]) resolve(r Result[T], err error) {
	s.result, s.err = r, err
	close(s.done)
}

func (s *taskState[T]) abort(v any) {
	s.panicked, s.panicVal = true, v
	close(s.done)
}
