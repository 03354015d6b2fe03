package cacherepo

import (
	"context"
	"time"
)

// Nop is used when no cache is configured: every Get misses.
type Nop struct{}

type nopResponse[T any] struct{}

func (nopResponse[T]) Err() error { return nil }

func (nopResponse[T]) Result() (T, error) {
	var zero T
	return zero, nil
}

func (Nop) Get(context.Context, string) CacheResponse[string] {
	return nopResponse[string]{}
}

func (Nop) Set(context.Context, string, any, time.Duration) CacheResponse[string] {
	return nopResponse[string]{}
}

func (Nop) Del(context.Context, ...string) CacheResponse[int64] {
	return nopResponse[int64]{}
}

func (Nop) Incr(context.Context, string) CacheResponse[int64] {
	return nopResponse[int64]{}
}
