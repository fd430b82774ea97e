package ctxutil

import "context"

// Next receives from channel, giving up when ctx is cancelled.
func Next[T any](ctx context.Context, channel chan T) (out T, ok bool) {
	select {
	case out = <-channel:
		return out, true
	case <-ctx.Done():
		return out, false
	}
}

// Send delivers value to channel, giving up when ctx is cancelled.
func Send[T any](ctx context.Context, channel chan T, value T) bool {
	select {
	case channel <- value:
		return true
	case <-ctx.Done():
		return false
	}
}
