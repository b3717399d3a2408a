package result

import (
	"context"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	apiError "github.com/next-trace/scg-result/error"
)

// BindAsync runs transform on the value of a success in its own goroutine and
// returns a Task for the outcome:
//   - a non-nil value becomes a success
//   - a nil value becomes a failure holding error.NullValueOf[TOut]
//   - a fault becomes a failure holding error.FromException, unless the fatal
//     predicate claims it; fatal errors are returned by Task.Await and fatal
//     panics are re-raised there
//
// A failure resolves immediately with the same errors and transform is not called.
func BindAsync[T, TOut any](ctx context.Context, r Result[T], transform func(context.Context, T) (TOut, error), opts ...Option) Task[TOut] {
	if prior, failed := r.failed(); failed {
		return Resolved(Result[TOut]{state: failure{errors: prior}})
	}

	value := r.state.(success[T]).value

	return spawn(newConfig(opts), func() (TOut, error) {
		return transform(ctx, value)
	})
}

// Then waits for pending and applies BindAsync to its Result, so asynchronous
// steps compose left to right without awaiting in between. A fatal outcome of
// pending is propagated as is.
func Then[TIn, TOut any](ctx context.Context, pending Task[TIn], transform func(context.Context, TIn) (TOut, error), opts ...Option) Task[TOut] {
	t := newTask[TOut]()

	go func() {
		completed := false

		defer func() {
			if v := recover(); v != nil {
				t.s.abort(v)
			} else if !completed {
				t.s.resolve(FromError[TOut](apiError.FromException(ErrGoexit)), nil)
			}
		}()

		r, err := pending.Await(ctx)
		if err != nil {
			completed = true
			t.s.resolve(Result[TOut]{}, err)

			return
		}

		next, err := BindAsync(ctx, r, transform, opts...).Await(ctx)
		completed = true
		t.s.resolve(next, err)
	}()

	return t
}

// Run starts produce in its own goroutine under the same rules as BindAsync.
func Run[T any](ctx context.Context, produce func(ctx context.Context) (T, error), opts ...Option) Task[T] {
	return spawn(newConfig(opts), func() (T, error) {
		return produce(ctx)
	})
}

func spawn[T any](cfg *config, work func() (T, error)) Task[T] {
	t := newTask[T]()

	go func() {
		completed := false

		defer func() {
			v := recover()
			if v == nil {
				if !completed {
					// runtime.Goexit skipped the return
					t.s.resolve(capture[T](cfg, ErrGoexit), nil)
				}

				return
			}

			fault, ok := v.(error)
			if !ok {
				fault = errs.New("panic: %v", v)
			}

			if cfg.isFatal(fault) {
				cfg.logger.Warn("fatal panic in async transform", zap.Error(fault))
				t.s.abort(v)

				return
			}

			t.s.resolve(capture[T](cfg, fault), nil)
		}()

		out, err := work()
		completed = true

		if err != nil {
			if cfg.isFatal(err) {
				cfg.logger.Warn("fatal fault in async transform", zap.Error(err))
				t.s.resolve(Result[T]{}, err)

				return
			}

			t.s.resolve(capture[T](cfg, err), nil)

			return
		}

		if isNil(out) {
			e := apiError.NullValueOf[T]()
			cfg.logger.Debug("async transform returned nil", zap.Object("error", e))
			t.s.resolve(FromError[T](e), nil)

			return
		}

		t.s.resolve(FromValue(out), nil)
	}()

	return t
}

func capture[T any](cfg *config, fault error) Result[T] {
	e := apiError.FromException(fault)
	cfg.logger.Debug("captured fault in async transform", zap.Object("error", e))

	return FromError[T](e)
}
