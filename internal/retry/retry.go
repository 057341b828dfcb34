package retry

import (
	"context"
	"time"
)

// MaxDelay caps the backoff between two attempts.
const MaxDelay = 10 * time.Second

// DoWithRetry runs fn up to attempts times, doubling the pause after each
// failure starting from baseDelay. It returns the last error from fn, or
// the context error if ctx ends first.
func DoWithRetry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay

	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > MaxDelay {
			delay = MaxDelay
		}
	}
	return err
}
