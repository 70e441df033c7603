// Package async runs functions in goroutines and exposes their outcome as a Future.
//
// The files package uses it for SaveAsync and ReadAsync so callers can start
// several writes and collect them later:
//
//	f1 := async.Run(ctx, func(ctx context.Context) (int, error) { return write(ctx, a) })
//	f2 := async.Run(ctx, func(ctx context.Context) (int, error) { return write(ctx, b) })
//	sizes, err := async.WaitAll(f1, f2)
//
// A Future completes exactly once. Await blocks, AwaitContext and
// AwaitWithTimeout bound the wait, IsComplete polls.
package async
