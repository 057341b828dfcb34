package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoWithRetrySucceedsEventually(t *testing.T) {
	calls := 0
	err := DoWithRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoWithRetryReturnsLastError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := DoWithRetry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 2 {
		t.Fatalf("expected boom after 2 calls, got %v after %d", err, calls)
	}
}

func TestDoWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := DoWithRetry(ctx, 5, time.Hour, func() error { return errors.New("never") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
