package service

import "errors"

// Sentinel causes carried by business failures. Callers match them with
// errors.Is on the Failure; the API layer maps them to HTTP status codes.
var (
	// ErrDuplicateEmail indicates an account with the email already exists.
	// API layer should map this to HTTP 409 Conflict.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound indicates no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates the login password did not match.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrWrongPassword = errors.New("wrong password")

	// ErrPodcastNotFound indicates no podcast has the requested id.
	ErrPodcastNotFound = errors.New("podcast not found")

	// ErrEpisodeNotFound indicates the podcast has no episode with the requested id.
	ErrEpisodeNotFound = errors.New("episode not found")

	// ErrInvalidRating indicates a rating outside the accepted range.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidRating = errors.New("invalid rating")
)
