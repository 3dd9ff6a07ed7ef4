package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidRole is returned for roles other than Listener and Host.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidRating is returned when a podcast rating falls outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("rating out of range")

	// ErrEmptyTitle is returned when a podcast or episode has no title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCategory is returned when a podcast or episode has no category.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrMissingPodcast is returned when an episode is not attached to a podcast.
	ErrMissingPodcast = errors.New("episode must belong to a podcast")
)
