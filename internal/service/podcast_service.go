package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

// Fixed failure messages of the catalog operations.
const (
	MsgInternal      = "Internal server error occurred."
	MsgInvalidRating = "Rating must be between 1 and 5."
)

// PodcastNotFoundMessage is the failure message for a missing podcast.
func PodcastNotFoundMessage(id int64) string {
	return fmt.Sprintf("Podcast with id %d not found", id)
}

// EpisodeNotFoundMessage is the failure message for an episode missing from a podcast.
func EpisodeNotFoundMessage(ref EpisodeRef) string {
	return fmt.Sprintf("Episode with id %d not found in podcast with id %d", ref.EpisodeID, ref.PodcastID)
}

// CreatePodcastInput holds the fields of a new podcast.
type CreatePodcastInput struct {
	Title    string
	Category string
}

// UpdatePodcastInput is a partial podcast update. Nil fields and an unset
// Rating are left unchanged; a null Rating clears it.
type UpdatePodcastInput struct {
	ID       int64
	Title    *string
	Category *string
	Rating   Optional[int]
}

// CreateEpisodeInput holds the fields of a new episode.
type CreateEpisodeInput struct {
	PodcastID int64
	Title     string
	Category  string
}

// EpisodeRef addresses an episode through its podcast.
type EpisodeRef struct {
	PodcastID int64
	EpisodeID int64
}

// UpdateEpisodeInput is a partial episode update.
type UpdateEpisodeInput struct {
	PodcastID int64
	EpisodeID int64
	Title     *string
	Category  *string
}

// PodcastService provides podcast and episode catalog operations.
type PodcastService interface {
	CreatePodcast(ctx context.Context, input CreatePodcastInput) Result[int64]
	GetAllPodcasts(ctx context.Context) Result[[]domain.Podcast]
	// GetPodcast returns the podcast with its episodes loaded.
	GetPodcast(ctx context.Context, id int64) Result[*domain.Podcast]
	UpdatePodcast(ctx context.Context, input UpdatePodcastInput) Result[struct{}]
	DeletePodcast(ctx context.Context, id int64) Result[struct{}]

	CreateEpisode(ctx context.Context, input CreateEpisodeInput) Result[int64]
	GetEpisodes(ctx context.Context, podcastID int64) Result[[]domain.Episode]
	GetEpisode(ctx context.Context, ref EpisodeRef) Result[*domain.Episode]
	UpdateEpisode(ctx context.Context, input UpdateEpisodeInput) Result[struct{}]
	DeleteEpisode(ctx context.Context, ref EpisodeRef) Result[struct{}]
}

// PodcastServiceImpl implements the PodcastService interface
type PodcastServiceImpl struct {
	podcasts store.PodcastStore
	episodes store.EpisodeStore
	logger   *slog.Logger
}

var _ PodcastService = (*PodcastServiceImpl)(nil)

// NewPodcastService creates a new PodcastService
func NewPodcastService(
	podcasts store.PodcastStore,
	episodes store.EpisodeStore,
	logger *slog.Logger,
) *PodcastServiceImpl {
	return &PodcastServiceImpl{
		podcasts: podcasts,
		episodes: episodes,
		logger:   logger.With("component", "podcast_service"),
	}
}

// findPodcast is the single lookup step every podcast-dependent operation goes through.
func (s *PodcastServiceImpl) findPodcast(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) Result[*domain.Podcast] {
	podcast, err := s.podcasts.FindByID(ctx, id, opts...)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("podcast not found", "podcast_id", id)
			return Reject[*domain.Podcast](ErrPodcastNotFound, PodcastNotFoundMessage(id))
		}
		return internalFailure[*domain.Podcast](s.logger, "failed to retrieve podcast", err,
			"podcast_id", id)
	}
	return Ok(podcast)
}

// CreatePodcast implements PodcastService.
func (s *PodcastServiceImpl) CreatePodcast(
	ctx context.Context,
	input CreatePodcastInput,
) Result[int64] {
	podcast, err := domain.NewPodcast(input.Title, input.Category)
	if err != nil {
		return internalFailure[int64](s.logger, "invalid podcast data", err)
	}

	if err := s.podcasts.Save(ctx, podcast); err != nil {
		return internalFailure[int64](s.logger, "failed to save podcast", err)
	}

	s.logger.Info("podcast created", "podcast_id", podcast.ID)
	return Ok(podcast.ID)
}

// GetAllPodcasts implements PodcastService.
func (s *PodcastServiceImpl) GetAllPodcasts(ctx context.Context) Result[[]domain.Podcast] {
	podcasts, err := s.podcasts.FindAll(ctx)
	if err != nil {
		return internalFailure[[]domain.Podcast](s.logger, "failed to list podcasts", err)
	}
	return Ok(podcasts)
}

// GetPodcast implements PodcastService.
func (s *PodcastServiceImpl) GetPodcast(ctx context.Context, id int64) Result[*domain.Podcast] {
	return s.findPodcast(ctx, id, store.WithEpisodes())
}

// UpdatePodcast implements PodcastService. The rating is validated before anything is written.
func (s *PodcastServiceImpl) UpdatePodcast(
	ctx context.Context,
	input UpdatePodcastInput,
) Result[struct{}] {
	found := s.findPodcast(ctx, input.ID)
	if !found.OK {
		return Propagate[struct{}](found)
	}
	podcast := found.Value

	if input.Rating.Set && !input.Rating.Null {
		if err := domain.ValidateRating(input.Rating.Value); err != nil {
			s.logger.Debug("podcast update rejected: rating out of range",
				"podcast_id", input.ID,
				"rating", input.Rating.Value)
			return Reject[struct{}](ErrInvalidRating, MsgInvalidRating)
		}
	}

	if input.Title != nil {
		podcast.Title = *input.Title
	}
	if input.Category != nil {
		podcast.Category = *input.Category
	}
	if input.Rating.Set {
		podcast.Rating = input.Rating.Ptr()
	}
	podcast.UpdatedAt = time.Now().UTC()

	if err := s.podcasts.Save(ctx, podcast); err != nil {
		return internalFailure[struct{}](s.logger, "failed to save podcast", err,
			"podcast_id", input.ID)
	}

	return Done()
}

// DeletePodcast implements PodcastService. Episodes go with the podcast.
func (s *PodcastServiceImpl) DeletePodcast(ctx context.Context, id int64) Result[struct{}] {
	found := s.findPodcast(ctx, id)
	if !found.OK {
		return Propagate[struct{}](found)
	}

	if err := s.podcasts.Delete(ctx, id); err != nil {
		return internalFailure[struct{}](s.logger, "failed to delete podcast", err, "podcast_id", id)
	}

	s.logger.Info("podcast deleted", "podcast_id", id)
	return Done()
}

// CreateEpisode implements PodcastService.
func (s *PodcastServiceImpl) CreateEpisode(
	ctx context.Context,
	input CreateEpisodeInput,
) Result[int64] {
	found := s.findPodcast(ctx, input.PodcastID)
	if !found.OK {
		return Propagate[int64](found)
	}

	episode, err := domain.NewEpisode(found.Value.ID, input.Title, input.Category)
	if err != nil {
		return internalFailure[int64](s.logger, "invalid episode data", err,
			"podcast_id", input.PodcastID)
	}

	if err := s.episodes.Save(ctx, episode); err != nil {
		return internalFailure[int64](s.logger, "failed to save episode", err, "podcast_id", input.PodcastID)
	}

	s.logger.Info("episode created",
		"podcast_id", input.PodcastID,
		"episode_id", episode.ID)
	return Ok(episode.ID)
}

// GetEpisodes implements PodcastService.
func (s *PodcastServiceImpl) GetEpisodes(
	ctx context.Context,
	podcastID int64,
) Result[[]domain.Episode] {
	found := s.findPodcast(ctx, podcastID, store.WithEpisodes())
	if !found.OK {
		return Propagate[[]domain.Episode](found)
	}
	return Ok(found.Value.Episodes)
}

// GetEpisode implements PodcastService.
func (s *PodcastServiceImpl) GetEpisode(
	ctx context.Context,
	ref EpisodeRef,
) Result[*domain.Episode] {
	found := s.findPodcast(ctx, ref.PodcastID, store.WithEpisodes())
	if !found.OK {
		return Propagate[*domain.Episode](found)
	}

	episode := found.Value.FindEpisode(ref.EpisodeID)
	if episode == nil {
		s.logger.Debug("episode not found in podcast",
			"podcast_id", ref.PodcastID,
			"episode_id", ref.EpisodeID)
		return Reject[*domain.Episode](ErrEpisodeNotFound, EpisodeNotFoundMessage(ref))
	}
	return Ok(episode)
}

// UpdateEpisode implements PodcastService. The episode must belong to the podcast.
func (s *PodcastServiceImpl) UpdateEpisode(
	ctx context.Context,
	input UpdateEpisodeInput,
) Result[struct{}] {
	found := s.GetEpisode(ctx, EpisodeRef{PodcastID: input.PodcastID, EpisodeID: input.EpisodeID})
	if !found.OK {
		return Propagate[struct{}](found)
	}
	episode := found.Value

	if input.Title != nil {
		episode.Title = *input.Title
	}
	if input.Category != nil {
		episode.Category = *input.Category
	}
	episode.UpdatedAt = time.Now().UTC()

	if err := s.episodes.Save(ctx, episode); err != nil {
		return internalFailure[struct{}](s.logger, "failed to save episode", err,
			"podcast_id", input.PodcastID,
			"episode_id", input.EpisodeID)
	}

	return Done()
}

// DeleteEpisode implements PodcastService.
func (s *PodcastServiceImpl) DeleteEpisode(ctx context.Context, ref EpisodeRef) Result[struct{}] {
	found := s.GetEpisode(ctx, ref)
	if !found.OK {
		return Propagate[struct{}](found)
	}

	if err := s.episodes.Delete(ctx, found.Value.ID); err != nil {
		return internalFailure[struct{}](s.logger, "failed to delete episode", err,
			"podcast_id", ref.PodcastID,
			"episode_id", ref.EpisodeID)
	}

	return Done()
}

// internalFailure logs err and returns the catalog's generic infrastructure failure.
func internalFailure[T any](logger *slog.Logger, msg string, err error, attrs ...any) Result[T] {
	logger.Error(msg, append([]any{"error", err}, attrs...)...)
	return Fail[T](MsgInternal, err)
}
