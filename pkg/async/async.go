package async

import (
	"context"
	"time"
)

// Future holds the eventual result of a function started with Run or Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the function completes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until the function completes or ctx is done.
// The running function is not interrupted when ctx ends first.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout blocks for at most timeout and returns ErrTimeout when it elapses.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the function has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn in its own goroutine.
// A context that is already canceled completes the future with ctx.Err() without calling fn.
func Run[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Async is Run with a parameter passed through to fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Run(ctx, func(ctx context.Context) (U, error) {
		return fn(ctx, param)
	})
}

// Resolved returns an already completed future.
func Resolved[U any](result U, err error) *Future[U] {
	f := &Future[U]{result: result, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// WaitAll waits for every future and returns the results in order.
// The first error encountered in order is returned after all futures are complete.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}

// WaitAny returns the index and outcome of the first future to complete.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// Buffered so the losing goroutines never block.
	done := make(chan outcome, len(futures))
	for i, future := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			done <- outcome{index, result, err}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
