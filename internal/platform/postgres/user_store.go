package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/store"
)

const userColumns = "id, email, role, created_at, updated_at"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	hasher store.PasswordHasher
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(
	db store.DBTX,
	hasher store.PasswordHasher,
	logger *slog.Logger,
) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func userSelect(opts store.FindOptions) string {
	if opts.IncludePassword {
		return "SELECT " + userColumns + ", hashed_password FROM users"
	}
	return "SELECT " + userColumns + " FROM users"
}

func scanUser(row rowScanner, opts store.FindOptions) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	dest := []any{&user.ID, &user.Email, &role, &user.CreatedAt, &user.UpdatedAt}
	if opts.IncludePassword {
		dest = append(dest, &user.HashedPassword)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

// FindByID implements store.UserStore.FindByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	o := store.ApplyFindOptions(opts...)

	user, err := scanUser(s.db.QueryRowContext(ctx, userSelect(o)+" WHERE id = $1", id), o)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	return user, nil
}

// FindByEmail implements store.UserStore.FindByEmail
// Emails compare case-insensitively, matching the users_email_key index.
func (s *PostgresUserStore) FindByEmail(
	ctx context.Context,
	email string,
	opts ...store.FindOption,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	o := store.ApplyFindOptions(opts...)

	query := userSelect(o) + " WHERE lower(email) = lower($1)"
	user, err := scanUser(s.db.QueryRowContext(ctx, query, email), o)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return user, nil
}

// Save implements store.UserStore.Save
// A pending plaintext password is hashed and written; otherwise the
// hashed_password column is left as it is.
func (s *PostgresUserStore) Save(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var hashed string
	if user.PasswordPending() {
		var err error
		hashed, err = s.hasher.Hash(user.Password)
		if err != nil {
			log.Error("failed to hash password", slog.String("error", err.Error()))
			return err
		}
	}

	var err error
	if user.ID == 0 {
		err = s.insert(ctx, user, hashed)
	} else {
		err = s.update(ctx, user, hashed)
	}
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already exists", slog.Int64("user_id", user.ID))
			return store.ErrEmailExists
		}
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		log.Error("failed to save user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return MapError(err)
	}

	user.Password = ""
	if hashed != "" {
		user.HashedPassword = hashed
	}
	return nil
}

func (s *PostgresUserStore) insert(ctx context.Context, user *domain.User, hashed string) error {
	if hashed == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyPassword)
	}

	query := `
		INSERT INTO users (email, hashed_password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return s.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		hashed,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
}

func (s *PostgresUserStore) update(ctx context.Context, user *domain.User, hashed string) error {
	query := `
		UPDATE users
		SET email = $2, role = $3, updated_at = $4
		WHERE id = $1
	`
	args := []any{user.ID, user.Email, string(user.Role), user.UpdatedAt}
	if hashed != "" {
		query = `
			UPDATE users
			SET email = $2, role = $3, updated_at = $4, hashed_password = $5
			WHERE id = $1
		`
		args = append(args, hashed)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}
