package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/podcast-api/internal/store"
)

// Connection pool settings.
const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Open connects to PostgreSQL through the pgx driver and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Repositories is a PostgreSQL-backed store.Repositories sharing one pool.
type Repositories struct {
	db       *sql.DB
	users    *PostgresUserStore
	podcasts *PostgresPodcastStore
	episodes *PostgresEpisodeStore
}

var _ store.Repositories = (*Repositories)(nil)

// NewRepositories wires the PostgreSQL stores to db. Close releases the pool.
func NewRepositories(db *sql.DB, hasher store.PasswordHasher, logger *slog.Logger) *Repositories {
	return &Repositories{
		db:       db,
		users:    NewPostgresUserStore(db, hasher, logger),
		podcasts: NewPostgresPodcastStore(db, logger),
		episodes: NewPostgresEpisodeStore(db, logger),
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

// Close implements store.Repositories.
func (r *Repositories) Close() error {
	return r.db.Close()
}
