package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service/auth"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testTime = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

// hashMatcher matches a bcrypt hash of the expected plaintext.
type hashMatcher struct {
	password string
}

func (m hashMatcher) Match(v driver.Value) bool {
	hash, ok := v.(string)
	return ok && bcrypt.CompareHashAndPassword([]byte(hash), []byte(m.password)) == nil
}

func TestUserStore_InsertHashesPassword(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)

	user, err := domain.NewUser("host@example.com", "password123", domain.RoleHost)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("host@example.com", hashMatcher{"password123"}, "Host", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	require.NoError(t, users.Save(context.Background(), user))
	assert.Equal(t, int64(1), user.ID)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, user.HashedPassword)
}

func TestUserStore_UpdateWithoutPasswordLeavesHash(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)

	user := &domain.User{ID: 4, Email: "new@example.com", Role: domain.RoleListener, UpdatedAt: testTime}

	// Four arguments: the statement has no hashed_password parameter.
	mock.ExpectExec("UPDATE users").
		WithArgs(int64(4), "new@example.com", "Listener", testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, users.Save(context.Background(), user))
}

func TestUserStore_UpdateWithPasswordRehashes(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)

	user := &domain.User{ID: 4, Email: "a@example.com", Role: domain.RoleListener, UpdatedAt: testTime}
	user.SetPassword("rotated-password")

	mock.ExpectExec("UPDATE users\\s+SET email = .*hashed_password = ").
		WithArgs(int64(4), "a@example.com", "Listener", testTime, hashMatcher{"rotated-password"}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, users.Save(context.Background(), user))
	assert.False(t, user.PasswordPending())
}

func TestUserStore_SaveErrors(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)
		user, err := domain.NewUser("dup@example.com", "password123", domain.RoleHost)
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})

		assert.ErrorIs(t, users.Save(context.Background(), user), store.ErrEmailExists)
	})

	t.Run("missing row on update", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)
		user := &domain.User{ID: 9, Email: "gone@example.com", Role: domain.RoleHost}

		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, users.Save(context.Background(), user), store.ErrUserNotFound)
	})

	t.Run("invalid entity never reaches the database", func(t *testing.T) {
		db, _ := newMockDB(t)
		users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)

		err := users.Save(context.Background(), &domain.User{Email: "x", Role: domain.RoleHost})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestUserStore_FindProjection(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewPostgresUserStore(db, auth.NewBcryptVerifier(bcrypt.MinCost), nil)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, role, created_at, updated_at FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "created_at", "updated_at"}).
			AddRow(int64(2), "a@example.com", "Host", testTime, testTime))

	user, err := users.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHost, user.Role)
	assert.Empty(t, user.HashedPassword)

	mock.ExpectQuery(regexp.QuoteMeta("updated_at, hashed_password FROM users WHERE lower(email) = lower($1)")).
		WithArgs("A@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "created_at", "updated_at", "hashed_password"}).
			AddRow(int64(2), "a@example.com", "Host", testTime, testTime, "$2a$04$hash"))

	withHash, err := users.FindByEmail(ctx, "A@example.com", store.IncludePassword())
	require.NoError(t, err)
	assert.Equal(t, "$2a$04$hash", withHash.HashedPassword)

	mock.ExpectQuery("FROM users WHERE id").WithArgs(int64(3)).WillReturnError(sql.ErrNoRows)
	_, err = users.FindByID(ctx, 3)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func podcastRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "category", "rating", "created_at", "updated_at"})
}

func episodeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "podcast_id", "title", "category", "created_at", "updated_at"})
}

func TestPodcastStore_FindByIDWithEpisodesUsesReadTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	podcasts := NewPostgresPodcastStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM podcasts").
		WithArgs(int64(1)).
		WillReturnRows(podcastRows().AddRow(int64(1), "Go Time", "Tech", int64(4), testTime, testTime))
	mock.ExpectQuery("FROM episodes").
		WithArgs(int64(1)).
		WillReturnRows(episodeRows().
			AddRow(int64(1), int64(1), "E1", "Tech", testTime, testTime).
			AddRow(int64(2), int64(1), "E2", "Tech", testTime, testTime))
	mock.ExpectCommit()

	podcast, err := podcasts.FindByID(context.Background(), 1, store.WithEpisodes())
	require.NoError(t, err)
	require.NotNil(t, podcast.Rating)
	assert.Equal(t, 4, *podcast.Rating)
	require.Len(t, podcast.Episodes, 2)
	assert.Equal(t, "E2", podcast.Episodes[1].Title)
}

func TestPodcastStore_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	podcasts := NewPostgresPodcastStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM podcasts").WithArgs(int64(5)).WillReturnRows(podcastRows())
	mock.ExpectRollback()

	_, err := podcasts.FindByID(context.Background(), 5, store.WithEpisodes())
	assert.ErrorIs(t, err, store.ErrPodcastNotFound)

	mock.ExpectQuery("FROM podcasts").WithArgs(int64(6)).WillReturnRows(podcastRows())
	_, err = podcasts.FindByID(context.Background(), 6)
	assert.ErrorIs(t, err, store.ErrPodcastNotFound)
}

func TestPodcastStore_SaveNullRating(t *testing.T) {
	db, mock := newMockDB(t)
	podcasts := NewPostgresPodcastStore(db, nil)

	podcast := &domain.Podcast{ID: 3, Title: "T", Category: "C", UpdatedAt: testTime}

	mock.ExpectExec("UPDATE podcasts").
		WithArgs(int64(3), "T", "C", nil, testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, podcasts.Save(context.Background(), podcast))
}

func TestPodcastStore_FindAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	podcasts := NewPostgresPodcastStore(db, nil)

	mock.ExpectQuery("FROM podcasts\\s+ORDER BY id").WillReturnRows(podcastRows())

	all, err := podcasts.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestEpisodeStore_InsertMissingPodcast(t *testing.T) {
	db, mock := newMockDB(t)
	episodes := NewPostgresEpisodeStore(db, nil)

	episode, err := domain.NewEpisode(8, "E", "C")
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO episodes").
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "episodes_podcast_id_fkey"})

	assert.ErrorIs(t, episodes.Save(context.Background(), episode), store.ErrPodcastNotFound)
}

func TestEpisodeStore_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	episodes := NewPostgresEpisodeStore(db, nil)

	mock.ExpectExec("DELETE FROM episodes").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, episodes.Delete(context.Background(), 2), store.ErrEpisodeNotFound)

	connErr := errors.New("connection reset")
	mock.ExpectExec("DELETE FROM episodes").WithArgs(int64(3)).WillReturnError(connErr)
	assert.ErrorIs(t, episodes.Delete(context.Background(), 3), connErr)
}
