// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels. Every helper gives up as soon as the context is done.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done.
// The boolean is false when ctx is done first or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first, in which case it
// returns false.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Range returns an unbuffered channel yielding 0, 1, ..., n-1. The channel is
// closed after the last value or as soon as ctx is done.
func Range(ctx context.Context, n int) <-chan int {
	ch := make(chan int)

	go func() {
		defer close(ch)

		for i := range n {
			if !Send(ctx, ch, i) {
				return
			}
		}
	}()

	return ch
}
