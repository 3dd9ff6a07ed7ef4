package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

// dataset is the shared state behind the memory stores.
type dataset struct {
	mu sync.RWMutex

	users    map[int64]domain.User
	podcasts map[int64]domain.Podcast
	episodes map[int64]domain.Episode

	lastUserID    int64
	lastPodcastID int64
	lastEpisodeID int64
}

// Repositories is an in-memory store.Repositories.
type Repositories struct {
	users    *UserStore
	podcasts *PodcastStore
	episodes *EpisodeStore
}

var _ store.Repositories = (*Repositories)(nil)

// NewRepositories creates an empty in-memory dataset. hasher is used by the
// user store to hash passwords on write.
func NewRepositories(hasher store.PasswordHasher) *Repositories {
	data := &dataset{
		users:    make(map[int64]domain.User),
		podcasts: make(map[int64]domain.Podcast),
		episodes: make(map[int64]domain.Episode),
	}
	return &Repositories{
		users:    &UserStore{data: data, hasher: hasher},
		podcasts: &PodcastStore{data: data},
		episodes: &EpisodeStore{data: data},
	}
}

// Users implements store.Repositories.
func (r *Repositories) Users() store.UserStore {
	return r.users
}

// Podcasts implements store.Repositories.
func (r *Repositories) Podcasts() store.PodcastStore {
	return r.podcasts
}

// Episodes implements store.Repositories.
func (r *Repositories) Episodes() store.EpisodeStore {
	return r.episodes
}

// Close implements store.Repositories. There is nothing to release.
func (r *Repositories) Close() error {
	return nil
}

func checkContext(ctx context.Context) error {
	return ctx.Err()
}
