package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorUnwrapsAndReportsStatus(t *testing.T) {
	cause := errors.New("proposal not found")
	err := fmt.Errorf("handler: %w", NotFound("proposal_not_found", "proposal not found", cause))

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError in chain")
	}
	if appErr.StatusCode() != http.StatusNotFound || appErr.Code != "proposal_not_found" {
		t.Fatalf("unexpected error %+v", appErr)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
}

func TestZeroAndNilAppError(t *testing.T) {
	var nilErr *AppError
	if nilErr.StatusCode() != http.StatusInternalServerError || nilErr.Error() != "" {
		t.Fatalf("nil error should report 500 and empty message")
	}
	if got := (&AppError{}).Error(); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("unexpected message %q", got)
	}
	if TooManyRequests("rate_limited", "slow down").StatusCode() != http.StatusTooManyRequests {
		t.Fatalf("expected 429")
	}
}
