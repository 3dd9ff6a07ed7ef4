package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/podcast-api/internal/store"
)

// SQLSTATE codes the catalog schema can raise on write.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// violations maps a SQLSTATE to the store sentinel it becomes. label names the
// constraint kind in the wrapped message.
var violations = map[string]struct {
	sentinel error
	label    string
}{
	uniqueViolationCode:     {store.ErrDuplicate, "unique"},
	foreignKeyViolationCode: {store.ErrInvalidEntity, "foreign key"},
	checkViolationCode:      {store.ErrInvalidEntity, "check"},
	notNullViolationCode:    {store.ErrInvalidEntity, "not null"},
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := errors.As(err, &pgErr)
	return pgErr, ok
}

// MapError translates driver errors into store sentinels, keeping the original
// text in the message. Anything it does not recognize comes back unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	pgErr, ok := pgError(err)
	if !ok {
		return err
	}
	v, known := violations[pgErr.Code]
	if !known {
		return err
	}

	subject := pgErr.ConstraintName
	if subject == "" {
		subject = pgErr.ColumnName
	}
	if subject == "" {
		return fmt.Errorf("%w: %s violation: %v", v.sentinel, v.label, err)
	}
	return fmt.Errorf("%w: %s violation (%s): %v", v.sentinel, v.label, subject, err)
}

// IsUniqueViolation reports a duplicate key, e.g. a second account for an email.
func IsUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports a reference to a missing row, e.g. an episode
// insert for a podcast deleted concurrently.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected turns an UPDATE or DELETE that matched nothing into
// notFound, or store.ErrNotFound when notFound is nil.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("check rows affected: nil result")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}

// IsNotFoundError matches sql.ErrNoRows and every store not-found sentinel.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || store.IsNotFoundError(err)
}
