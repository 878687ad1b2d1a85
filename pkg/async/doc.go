// Package async runs independent error-returning operations concurrently and
// waits for all of them.
//
// Exec starts a function in its own goroutine and returns a future:
//
//	storeSent := async.Exec(ctx, order, sendStoreEmail)
//	customerSent := async.Exec(ctx, order, sendConfirmation)
//
//	// Blocks until both finish; errors are combined with errors.Join.
//	if err := async.ExecAll(storeSent, customerSent); err != nil {
//		return err
//	}
//
// A context that is already canceled when Exec is called short-circuits the
// function, and the future resolves to ctx.Err(). Cancellation after the
// function started is the function's own responsibility.
package async
