package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/store"
)

const podcastSelect = `
	SELECT id, title, category, rating, created_at, updated_at
	FROM podcasts
`

// PostgresPodcastStore implements the store.PodcastStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPodcastStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresPodcastStore creates a new PostgreSQL implementation of the PodcastStore interface.
// It takes the connection pool rather than a DBTX because loading a podcast
// with its episodes runs in its own read-only transaction.
func NewPostgresPodcastStore(db *sql.DB, logger *slog.Logger) *PostgresPodcastStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPodcastStore{
		db:     db,
		logger: logger.With(slog.String("component", "podcast_store")),
	}
}

// Ensure PostgresPodcastStore implements store.PodcastStore interface
var _ store.PodcastStore = (*PostgresPodcastStore)(nil)

func scanPodcast(row rowScanner) (*domain.Podcast, error) {
	var (
		podcast domain.Podcast
		rating  sql.NullInt64
	)
	err := row.Scan(
		&podcast.ID,
		&podcast.Title,
		&podcast.Category,
		&rating,
		&podcast.CreatedAt,
		&podcast.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rating.Valid {
		r := int(rating.Int64)
		podcast.Rating = &r
	}
	return &podcast, nil
}

// FindByID implements store.PodcastStore.FindByID
// With store.WithEpisodes the podcast and its episodes are read in one
// read-only transaction so both come from the same snapshot.
func (s *PostgresPodcastStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.Podcast, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !store.ApplyFindOptions(opts...).WithEpisodes {
		podcast, err := scanPodcast(s.db.QueryRowContext(ctx, podcastSelect+" WHERE id = $1", id))
		if err != nil {
			return nil, s.lookupError(log, err, id)
		}
		return podcast, nil
	}

	var podcast *domain.Podcast
	err := store.InTx(ctx, s.db, store.ReadOnly, func(ctx context.Context, tx store.DBTX) error {
		var err error
		podcast, err = scanPodcast(tx.QueryRowContext(ctx, podcastSelect+" WHERE id = $1", id))
		if err != nil {
			return s.lookupError(log, err, id)
		}
		podcast.Episodes, err = queryEpisodes(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return podcast, nil
}

func (s *PostgresPodcastStore) lookupError(log *slog.Logger, err error, id int64) error {
	if IsNotFoundError(err) {
		log.Debug("podcast not found", slog.Int64("podcast_id", id))
		return store.ErrPodcastNotFound
	}
	log.Error("failed to get podcast by ID",
		slog.String("error", err.Error()),
		slog.Int64("podcast_id", id))
	return MapError(err)
}

// FindAll implements store.PodcastStore.FindAll
func (s *PostgresPodcastStore) FindAll(ctx context.Context) ([]domain.Podcast, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, podcastSelect+" ORDER BY id")
	if err != nil {
		log.Error("failed to list podcasts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	podcasts := []domain.Podcast{}
	for rows.Next() {
		podcast, err := scanPodcast(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, *podcast)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate podcasts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return podcasts, nil
}

// Save implements store.PodcastStore.Save
// The Episodes field is ignored.
func (s *PostgresPodcastStore) Save(ctx context.Context, podcast *domain.Podcast) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := podcast.Validate(); err != nil {
		log.Warn("podcast validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("podcast_id", podcast.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if podcast.ID == 0 {
		query := `
			INSERT INTO podcasts (title, category, rating, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := s.db.QueryRowContext(
			ctx,
			query,
			podcast.Title,
			podcast.Category,
			podcast.Rating,
			podcast.CreatedAt,
			podcast.UpdatedAt,
		).Scan(&podcast.ID)
		if err != nil {
			log.Error("failed to create podcast", slog.String("error", err.Error()))
			return MapError(err)
		}
		log.Debug("podcast created", slog.Int64("podcast_id", podcast.ID))
		return nil
	}

	query := `
		UPDATE podcasts
		SET title = $2, category = $3, rating = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		podcast.ID,
		podcast.Title,
		podcast.Category,
		podcast.Rating,
		podcast.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update podcast",
			slog.String("error", err.Error()),
			slog.Int64("podcast_id", podcast.ID))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrPodcastNotFound)
}

// Delete implements store.PodcastStore.Delete
// Episodes are removed by the ON DELETE CASCADE foreign key.
func (s *PostgresPodcastStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM podcasts WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete podcast",
			slog.String("error", err.Error()),
			slog.Int64("podcast_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrPodcastNotFound)
}
