package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

// PodcastStore is an in-memory store.PodcastStore.
type PodcastStore struct {
	data *dataset
}

var _ store.PodcastStore = (*PodcastStore)(nil)

func byID[T any](id func(T) int64) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(id(a), id(b)) }
}

// episodesOf returns the podcast's episodes ordered by id. Caller holds the lock.
func (d *dataset) episodesOf(podcastID int64) []domain.Episode {
	episodes := []domain.Episode{}
	for _, e := range d.episodes {
		if e.PodcastID == podcastID {
			episodes = append(episodes, e)
		}
	}
	slices.SortFunc(episodes, byID(func(e domain.Episode) int64 { return e.ID }))
	return episodes
}

// FindByID implements store.PodcastStore.
func (s *PodcastStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.Podcast, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	p, ok := s.data.podcasts[id]
	if !ok {
		return nil, store.ErrPodcastNotFound
	}
	if p.Rating != nil {
		rating := *p.Rating
		p.Rating = &rating
	}
	if store.ApplyFindOptions(opts...).WithEpisodes {
		p.Episodes = s.data.episodesOf(id)
	}
	return &p, nil
}

// FindAll implements store.PodcastStore.
func (s *PodcastStore) FindAll(ctx context.Context) ([]domain.Podcast, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	podcasts := make([]domain.Podcast, 0, len(s.data.podcasts))
	for _, p := range s.data.podcasts {
		if p.Rating != nil {
			rating := *p.Rating
			p.Rating = &rating
		}
		podcasts = append(podcasts, p)
	}
	slices.SortFunc(podcasts, byID(func(p domain.Podcast) int64 { return p.ID }))
	return podcasts, nil
}

// Save implements store.PodcastStore. The Episodes field is not persisted.
func (s *PodcastStore) Save(ctx context.Context, podcast *domain.Podcast) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := podcast.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	record := *podcast
	record.Episodes = nil
	if podcast.Rating != nil {
		rating := *podcast.Rating
		record.Rating = &rating
	}

	if record.ID == 0 {
		s.data.lastPodcastID++
		record.ID = s.data.lastPodcastID
	} else if existing, ok := s.data.podcasts[record.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else {
		return store.ErrPodcastNotFound
	}

	s.data.podcasts[record.ID] = record
	podcast.ID = record.ID
	return nil
}

// Delete implements store.PodcastStore. The podcast's episodes are removed with it.
func (s *PodcastStore) Delete(ctx context.Context, id int64) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.podcasts[id]; !ok {
		return store.ErrPodcastNotFound
	}
	delete(s.data.podcasts, id)
	for episodeID, e := range s.data.episodes {
		if e.PodcastID == id {
			delete(s.data.episodes, episodeID)
		}
	}
	return nil
}

// EpisodeStore is an in-memory store.EpisodeStore.
type EpisodeStore struct {
	data *dataset
}

var _ store.EpisodeStore = (*EpisodeStore)(nil)

// FindByID implements store.EpisodeStore.
func (s *EpisodeStore) FindByID(
	ctx context.Context,
	id int64,
	_ ...store.FindOption,
) (*domain.Episode, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	e, ok := s.data.episodes[id]
	if !ok {
		return nil, store.ErrEpisodeNotFound
	}
	return &e, nil
}

// FindByPodcast implements store.EpisodeStore.
func (s *EpisodeStore) FindByPodcast(ctx context.Context, podcastID int64) ([]domain.Episode, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	return s.data.episodesOf(podcastID), nil
}

// Save implements store.EpisodeStore. The owning podcast must exist.
func (s *EpisodeStore) Save(ctx context.Context, episode *domain.Episode) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := episode.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.podcasts[episode.PodcastID]; !ok {
		return store.ErrPodcastNotFound
	}

	record := *episode
	if record.ID == 0 {
		s.data.lastEpisodeID++
		record.ID = s.data.lastEpisodeID
	} else if existing, ok := s.data.episodes[record.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else {
		return store.ErrEpisodeNotFound
	}

	s.data.episodes[record.ID] = record
	episode.ID = record.ID
	return nil
}

// Delete implements store.EpisodeStore.
func (s *EpisodeStore) Delete(ctx context.Context, id int64) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.episodes[id]; !ok {
		return store.ErrEpisodeNotFound
	}
	delete(s.data.episodes, id)
	return nil
}
