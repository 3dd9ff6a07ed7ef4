package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/store"
)

const episodeSelect = `
	SELECT id, podcast_id, title, category, created_at, updated_at
	FROM episodes
`

// PostgresEpisodeStore implements the store.EpisodeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEpisodeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEpisodeStore creates a new PostgreSQL implementation of the EpisodeStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresEpisodeStore(db store.DBTX, logger *slog.Logger) *PostgresEpisodeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEpisodeStore{
		db:     db,
		logger: logger.With(slog.String("component", "episode_store")),
	}
}

// Ensure PostgresEpisodeStore implements store.EpisodeStore interface
var _ store.EpisodeStore = (*PostgresEpisodeStore)(nil)

func scanEpisode(row rowScanner) (*domain.Episode, error) {
	var episode domain.Episode
	err := row.Scan(
		&episode.ID,
		&episode.PodcastID,
		&episode.Title,
		&episode.Category,
		&episode.CreatedAt,
		&episode.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

// queryEpisodes loads the episodes of a podcast ordered by id. It is shared
// with the podcast store, which calls it inside its read transaction.
func queryEpisodes(ctx context.Context, db store.DBTX, podcastID int64) ([]domain.Episode, error) {
	rows, err := db.QueryContext(ctx, episodeSelect+" WHERE podcast_id = $1 ORDER BY id", podcastID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	episodes := []domain.Episode{}
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		episodes = append(episodes, *episode)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return episodes, nil
}

// FindByID implements store.EpisodeStore.FindByID
func (s *PostgresEpisodeStore) FindByID(
	ctx context.Context,
	id int64,
	_ ...store.FindOption,
) (*domain.Episode, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	episode, err := scanEpisode(s.db.QueryRowContext(ctx, episodeSelect+" WHERE id = $1", id))
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("episode not found", slog.Int64("episode_id", id))
			return nil, store.ErrEpisodeNotFound
		}
		log.Error("failed to get episode by ID",
			slog.String("error", err.Error()),
			slog.Int64("episode_id", id))
		return nil, MapError(err)
	}
	return episode, nil
}

// FindByPodcast implements store.EpisodeStore.FindByPodcast
func (s *PostgresEpisodeStore) FindByPodcast(
	ctx context.Context,
	podcastID int64,
) ([]domain.Episode, error) {
	episodes, err := queryEpisodes(ctx, s.db, podcastID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list episodes",
			slog.String("error", err.Error()),
			slog.Int64("podcast_id", podcastID))
		return nil, err
	}
	return episodes, nil
}

// Save implements store.EpisodeStore.Save
// Returns store.ErrPodcastNotFound if the owning podcast does not exist.
func (s *PostgresEpisodeStore) Save(ctx context.Context, episode *domain.Episode) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := episode.Validate(); err != nil {
		log.Warn("episode validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("episode_id", episode.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if episode.ID == 0 {
		query := `
			INSERT INTO episodes (podcast_id, title, category, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := s.db.QueryRowContext(
			ctx,
			query,
			episode.PodcastID,
			episode.Title,
			episode.Category,
			episode.CreatedAt,
			episode.UpdatedAt,
		).Scan(&episode.ID)
		if err != nil {
			if IsForeignKeyViolation(err) {
				log.Warn("foreign key violation during episode creation",
					slog.Int64("podcast_id", episode.PodcastID))
				return store.ErrPodcastNotFound
			}
			log.Error("failed to create episode",
				slog.String("error", err.Error()),
				slog.Int64("podcast_id", episode.PodcastID))
			return MapError(err)
		}
		return nil
	}

	query := `
		UPDATE episodes
		SET title = $2, category = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		episode.ID,
		episode.Title,
		episode.Category,
		episode.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update episode",
			slog.String("error", err.Error()),
			slog.Int64("episode_id", episode.ID))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrEpisodeNotFound)
}

// Delete implements store.EpisodeStore.Delete
func (s *PostgresEpisodeStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM episodes WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete episode",
			slog.String("error", err.Error()),
			slog.Int64("episode_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrEpisodeNotFound)
}
