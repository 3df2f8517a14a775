package util

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type FetchStatus int

const (
	FetchOk FetchStatus = iota
	FetchTimedOut
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOk:
		return "ok"
	case FetchTimedOut:
		return "timed_out"
	default:
		return "failed"
	}
}

// Result is the tagged outcome of Fetch. Value is only meaningful when
// Status is FetchOk.
type Result[T any] struct {
	Value  T
	Status FetchStatus
	Err    error
}

func (r Result[T]) Ok() bool {
	return r.Status == FetchOk
}

// Or returns the fetched value, or def for any other outcome.
func (r Result[T]) Or(def T) T {
	if r.Ok() {
		return r.Value
	}
	return def
}

// Fetch runs fn with a deadline of d and never returns an error: timeouts,
// failures and panics inside fn are reported through the Status tag.
func Fetch[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) Result[T] {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	done := make(chan Result[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Result[T]{Status: FetchFailed, Err: fmt.Errorf("panic: %v", r)}
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			status := FetchFailed
			if errors.Is(err, context.DeadlineExceeded) {
				status = FetchTimedOut
			}
			done <- Result[T]{Status: status, Err: err}
			return
		}
		done <- Result[T]{Value: v, Status: FetchOk}
	}()

	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		return Result[T]{Status: FetchTimedOut, Err: ctx.Err()}
	}
}
