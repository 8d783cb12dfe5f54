package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork is joined into errors caused by an unreachable backend.
var ErrNetwork = errors.New("network error")

var (
	retryAttempts = 3
	retryDelay    = 100 * time.Millisecond
)

// RetryableError marks a transient failure.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err so that [RetryWithBackoff] tries again. Nil stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls fn up to three times, doubling the pause after
// each retryable failure. Other errors and context cancellation end the
// loop at once.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var err error
	for attempt, delay := 1, retryDelay; ; attempt, delay = attempt+1, delay*2 {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
