package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockPodcastStore is a mock of store.PodcastStore for use with testify/mock.
// Find options are passed to Called as a resolved store.FindOptions value.
type TestifyMockPodcastStore struct {
	mock.Mock
}

var _ store.PodcastStore = (*TestifyMockPodcastStore)(nil)

// FindByID is a mock implementation of store.PodcastStore.FindByID
func (m *TestifyMockPodcastStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.Podcast, error) {
	args := m.Called(ctx, id, store.ApplyFindOptions(opts...))
	if podcast, ok := args.Get(0).(*domain.Podcast); ok {
		return podcast, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindAll is a mock implementation of store.PodcastStore.FindAll
func (m *TestifyMockPodcastStore) FindAll(ctx context.Context) ([]domain.Podcast, error) {
	args := m.Called(ctx)
	if podcasts, ok := args.Get(0).([]domain.Podcast); ok {
		return podcasts, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.PodcastStore.Save
func (m *TestifyMockPodcastStore) Save(ctx context.Context, podcast *domain.Podcast) error {
	args := m.Called(ctx, podcast)
	return args.Error(0)
}

// Delete is a mock implementation of store.PodcastStore.Delete
func (m *TestifyMockPodcastStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TestifyMockEpisodeStore is a mock of store.EpisodeStore for use with testify/mock
type TestifyMockEpisodeStore struct {
	mock.Mock
}

var _ store.EpisodeStore = (*TestifyMockEpisodeStore)(nil)

// FindByID is a mock implementation of store.EpisodeStore.FindByID
func (m *TestifyMockEpisodeStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.Episode, error) {
	args := m.Called(ctx, id, store.ApplyFindOptions(opts...))
	if episode, ok := args.Get(0).(*domain.Episode); ok {
		return episode, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByPodcast is a mock implementation of store.EpisodeStore.FindByPodcast
func (m *TestifyMockEpisodeStore) FindByPodcast(
	ctx context.Context,
	podcastID int64,
) ([]domain.Episode, error) {
	args := m.Called(ctx, podcastID)
	if episodes, ok := args.Get(0).([]domain.Episode); ok {
		return episodes, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.EpisodeStore.Save
func (m *TestifyMockEpisodeStore) Save(ctx context.Context, episode *domain.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

// Delete is a mock implementation of store.EpisodeStore.Delete
func (m *TestifyMockEpisodeStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
