package coral

import (
	"context"

	"github.com/yunusuzun/SwiftCoral/download"
)

// Outcome carries a Call's terminal result for the channel adapter.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Call is an in-flight or completed asynchronous invocation. It
// resolves exactly once; every accessor observes the same terminal
// result.
type Call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newCall[T any]() *Call[T] {
	return &Call[T]{done: make(chan struct{})}
}

func (c *Call[T]) complete(val T, err error) {
	c.val, c.err = val, err
	close(c.done)
}

// Done is closed once the call has resolved.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Result blocks until the call resolves and returns its value and error.
func (c *Call[T]) Result() (T, error) {
	<-c.done
	return c.val, c.err
}

// Err blocks until the call resolves and returns its error.
func (c *Call[T]) Err() error {
	<-c.done
	return c.err
}

// Callback invokes fn exactly once with the terminal result, on its
// own goroutine.
func (c *Call[T]) Callback(fn func(T, error)) {
	go func() {
		<-c.done
		fn(c.val, c.err)
	}()
}

// Chan adapts the call to a single-value stream: the returned channel
// delivers one Outcome and is then closed.
func (c *Call[T]) Chan() <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)
	go func() {
		<-c.done
		out <- Outcome[T]{Value: c.val, Err: c.err}
		close(out)
	}()
	return out
}

// PerformAsync runs Perform on its own goroutine, decoding the
// response into a T. The returned Call resolves with the decoded value
// or the classified error.
func PerformAsync[T any](ctx context.Context, c *Client, e Endpoint, opts ...PerformOption) *Call[T] {
	call := newCall[T]()

	go func() {
		var dest T
		err := c.Perform(ctx, e, append(opts, WithDestination(&dest))...)
		call.complete(dest, err)
	}()

	return call
}

// DownloadAsync runs Download on its own goroutine. The returned Call
// resolves with destPath on success.
func (c *Client) DownloadAsync(ctx context.Context, e Endpoint, destPath string, opts ...download.Option) *Call[string] {
	call := newCall[string]()

	go func() {
		err := c.Download(ctx, e, destPath, opts...)
		call.complete(destPath, err)
	}()

	return call
}
