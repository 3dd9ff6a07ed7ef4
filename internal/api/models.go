package api

import (
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
)

// CreateAccountRequest defines the payload for the account creation endpoint.
type CreateAccountRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"required,oneof=Listener Host"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// EditProfileRequest defines the payload for PATCH /api/me.
// Absent fields are left unchanged.
type EditProfileRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
}

// CreatePodcastRequest defines the payload for the podcast creation endpoint.
type CreatePodcastRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdatePodcastRequest defines the payload for PATCH /api/podcasts/{id}.
// "rating": null clears the rating; range checks happen in the service.
type UpdatePodcastRequest struct {
	Title    *string               `json:"title"    validate:"omitempty,min=1"`
	Category *string               `json:"category" validate:"omitempty,min=1"`
	Rating   service.Optional[int] `json:"rating"`
}

// CreateEpisodeRequest defines the payload for the episode creation endpoint.
type CreateEpisodeRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdateEpisodeRequest defines the payload for PATCH on an episode.
type UpdateEpisodeRequest struct {
	Title    *string `json:"title"    validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,min=1"`
}

// OKResponse is the body of a successful operation without payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// TokenResponse carries the session token issued by login.
type TokenResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// IDResponse carries the id assigned by a creation.
type IDResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// UserResponse carries a user without its password hash.
type UserResponse struct {
	OK   bool         `json:"ok"`
	User *domain.User `json:"user"`
}

// PodcastsResponse carries the podcast listing.
type PodcastsResponse struct {
	OK       bool             `json:"ok"`
	Podcasts []domain.Podcast `json:"podcasts"`
}

// PodcastResponse carries one podcast with its episodes.
type PodcastResponse struct {
	OK      bool            `json:"ok"`
	Podcast *domain.Podcast `json:"podcast"`
}

// EpisodesResponse carries a podcast's episodes.
type EpisodesResponse struct {
	OK       bool             `json:"ok"`
	Episodes []domain.Episode `json:"episodes"`
}

// EpisodeResponse carries one episode.
type EpisodeResponse struct {
	OK      bool            `json:"ok"`
	Episode *domain.Episode `json:"episode"`
}
