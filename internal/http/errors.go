package api

import (
	"database/sql"
	"errors"
	"net/http"

	"voting-poll/internal/domain/poll"
	"voting-poll/internal/domain/user"
	"voting-poll/internal/platform/apperr"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		slogLogger.Error("request failed", "error", err)
	}
	writeJSON(w, appErr.StatusCode(), map[string]string{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

// mapError turns domain errors into API errors. Registry errors keep their
// own message so callers see the exact registry wording.
func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apperr.NotFound("not_found", "resource not found", err)
	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid credentials", err)
	case errors.Is(err, user.ErrInactiveUser):
		return apperr.Unauthorized("inactive_user", "user is inactive", err)
	case errors.Is(err, user.ErrEmailTaken):
		return apperr.BadRequest("email_taken", "email already taken", err)
	case errors.Is(err, user.ErrMissingFields):
		return apperr.BadRequest("invalid_input", err.Error(), err)
	case errors.Is(err, user.ErrInvalidRole):
		return apperr.BadRequest("invalid_input", err.Error(), err)
	case errors.Is(err, poll.ErrInvalidDateRange):
		return apperr.BadRequest("invalid_date_range", err.Error(), err)
	case errors.Is(err, poll.ErrInvalidFixedProposals):
		return apperr.BadRequest("invalid_fixed_proposals", err.Error(), err)
	case errors.Is(err, poll.ErrPollNotFound):
		return apperr.NotFound("poll_not_found", err.Error(), err)
	case errors.Is(err, poll.ErrProposalNotFound):
		return apperr.NotFound("proposal_not_found", err.Error(), err)
	case errors.Is(err, poll.ErrStandardPoll):
		return apperr.BadRequest("standard_poll", err.Error(), err)
	case errors.Is(err, poll.ErrPollInactive):
		return apperr.BadRequest("poll_inactive", err.Error(), err)
	case errors.Is(err, poll.ErrProposalNotInPoll):
		return apperr.BadRequest("proposal_not_in_poll", err.Error(), err)
	case errors.Is(err, poll.ErrNotPollOwner):
		return apperr.Forbidden("not_poll_owner", err.Error(), err)
	case errors.Is(err, poll.ErrAlreadyActivated):
		return apperr.Conflict("already_activated", err.Error(), err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}
