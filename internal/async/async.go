// Package async runs blocking calls in the background and delivers their
// outcome on a channel.
package async

import "context"

// Result carries the outcome of one background call.
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn in a new goroutine. The returned channel receives exactly one
// Result and is then closed. It is buffered, so a caller that stops waiting
// does not leak the goroutine.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// Await blocks until the result arrives or ctx is done.
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case r := <-ch:
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
