package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound, "entity not found: sql: no rows in result set"},
		{
			"duplicate email",
			&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"},
			store.ErrDuplicate,
			"unique violation (users_email_key)",
		},
		{
			"episode for missing podcast",
			&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "episodes_podcast_id_fkey"},
			store.ErrInvalidEntity,
			"foreign key violation (episodes_podcast_id_fkey)",
		},
		{
			"rating out of range",
			&pgconn.PgError{Code: checkViolationCode, ConstraintName: "podcasts_rating_check"},
			store.ErrInvalidEntity,
			"check violation (podcasts_rating_check)",
		},
		{
			"missing title",
			&pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			store.ErrInvalidEntity,
			"not null violation (title)",
		},
		{
			"wrapped unnamed unique",
			fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode}),
			store.ErrDuplicate,
			"unique violation:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.sentinel)
			assert.Contains(t, mapped.Error(), tt.message)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil))
	})

	t.Run("unrecognized errors pass through", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Same(t, original, MapError(original))

		serialization := &pgconn.PgError{Code: "40001"}
		assert.Equal(t, error(serialization), MapError(serialization))
	})
}

func TestViolationPredicates(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}
	fk := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), store.ErrPodcastNotFound))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), store.ErrPodcastNotFound), store.ErrPodcastNotFound)
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), nil), store.ErrNotFound)

	resultErr := errors.New("driver does not support RowsAffected")
	err := CheckRowsAffected(sqlmock.NewErrorResult(resultErr), nil)
	assert.ErrorIs(t, err, resultErr)
	assert.Contains(t, err.Error(), "check rows affected")

	assert.Error(t, CheckRowsAffected(nil, nil))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.True(t, IsNotFoundError(store.ErrEpisodeNotFound))
	assert.False(t, IsNotFoundError(store.ErrEmailExists))
}
