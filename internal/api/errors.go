package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/redact"
	"github.com/phrazzld/podcast-api/internal/service"
)

// MapFailureToStatusCode maps a service failure to an HTTP status code.
// Infrastructure failures are always 500.
func MapFailureToStatusCode(f *service.Failure) int {
	if f == nil {
		return http.StatusInternalServerError
	}
	if !f.IsBusiness() {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(f, service.ErrUserNotFound),
		errors.Is(f, service.ErrPodcastNotFound),
		errors.Is(f, service.ErrEpisodeNotFound):
		return http.StatusNotFound

	case errors.Is(f, service.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.Is(f, service.ErrWrongPassword):
		return http.StatusUnauthorized

	case errors.Is(f, service.ErrInvalidRating):
		return http.StatusBadRequest

	default:
		return http.StatusBadRequest
	}
}

// GetSafeErrorMessage returns the client-facing text of a failure. Business
// messages are fixed service strings; an infrastructure failure without a fixed
// message exposes its cause only after redaction.
func GetSafeErrorMessage(f *service.Failure) string {
	if f == nil {
		return "An unexpected error occurred"
	}
	if f.Message != "" {
		return f.Message
	}
	if f.Cause != nil {
		return redact.Error(f.Cause)
	}
	return "An unexpected error occurred"
}

// respondWithFailure writes f with its mapped status and logs its cause.
func respondWithFailure(w http.ResponseWriter, r *http.Request, f *service.Failure) {
	respondWithFailureStatus(w, r, MapFailureToStatusCode(f), f)
}

func respondWithFailureStatus(w http.ResponseWriter, r *http.Request, status int, f *service.Failure) {
	var cause error
	if f != nil {
		cause = f.Cause
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(f), cause)
}
