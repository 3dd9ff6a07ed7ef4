package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// TestifyMockPodcastService is a mock of service.PodcastService for use with testify/mock.
type TestifyMockPodcastService struct {
	mock.Mock
}

var _ service.PodcastService = (*TestifyMockPodcastService)(nil)

func (m *TestifyMockPodcastService) CreatePodcast(
	ctx context.Context,
	input service.CreatePodcastInput,
) service.Result[int64] {
	return m.Called(ctx, input).Get(0).(service.Result[int64])
}

func (m *TestifyMockPodcastService) GetAllPodcasts(ctx context.Context) service.Result[[]domain.Podcast] {
	return m.Called(ctx).Get(0).(service.Result[[]domain.Podcast])
}

func (m *TestifyMockPodcastService) GetPodcast(ctx context.Context, id int64) service.Result[*domain.Podcast] {
	return m.Called(ctx, id).Get(0).(service.Result[*domain.Podcast])
}

func (m *TestifyMockPodcastService) UpdatePodcast(
	ctx context.Context,
	input service.UpdatePodcastInput,
) service.Result[struct{}] {
	return m.Called(ctx, input).Get(0).(service.Result[struct{}])
}

func (m *TestifyMockPodcastService) DeletePodcast(ctx context.Context, id int64) service.Result[struct{}] {
	return m.Called(ctx, id).Get(0).(service.Result[struct{}])
}

func (m *TestifyMockPodcastService) CreateEpisode(
	ctx context.Context,
	input service.CreateEpisodeInput,
) service.Result[int64] {
	return m.Called(ctx, input).Get(0).(service.Result[int64])
}

func (m *TestifyMockPodcastService) GetEpisodes(
	ctx context.Context,
	podcastID int64,
) service.Result[[]domain.Episode] {
	return m.Called(ctx, podcastID).Get(0).(service.Result[[]domain.Episode])
}

func (m *TestifyMockPodcastService) GetEpisode(
	ctx context.Context,
	ref service.EpisodeRef,
) service.Result[*domain.Episode] {
	return m.Called(ctx, ref).Get(0).(service.Result[*domain.Episode])
}

func (m *TestifyMockPodcastService) UpdateEpisode(
	ctx context.Context,
	input service.UpdateEpisodeInput,
) service.Result[struct{}] {
	return m.Called(ctx, input).Get(0).(service.Result[struct{}])
}

func (m *TestifyMockPodcastService) DeleteEpisode(
	ctx context.Context,
	ref service.EpisodeRef,
) service.Result[struct{}] {
	return m.Called(ctx, ref).Get(0).(service.Result[struct{}])
}
