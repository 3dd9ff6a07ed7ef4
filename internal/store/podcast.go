package store

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
)

// PodcastStore defines the interface for podcast persistence.
// Save never writes the Episodes field; episodes are persisted through EpisodeStore.
// Deleting a podcast removes its episodes.
type PodcastStore interface {
	Repository[domain.Podcast]

	// FindAll returns every podcast ordered by id, without episodes.
	FindAll(ctx context.Context) ([]domain.Podcast, error)
}

// EpisodeStore defines the interface for episode persistence.
type EpisodeStore interface {
	Repository[domain.Episode]

	// FindByPodcast returns the episodes of a podcast ordered by id.
	FindByPodcast(ctx context.Context, podcastID int64) ([]domain.Episode, error)
}
