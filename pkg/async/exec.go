package async

import (
	"context"
	"errors"
)

// ExecFuture represents an asynchronous computation that only returns an error.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Await blocks until the function completes and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// IsComplete reports whether the function has finished, without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn(ctx, param) in a new goroutine.
// If ctx is already canceled, fn is not called and the future resolves to ctx.Err().
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.err = fn(ctx, param)
	}()

	return f
}

// ExecAll waits for every future and joins their errors.
// Unlike a first-error wait, it never returns while a future is still running.
func ExecAll(futures ...*ExecFuture) error {
	errs := make([]error, 0, len(futures))
	for _, future := range futures {
		errs = append(errs, future.Await())
	}
	return errors.Join(errs...)
}
