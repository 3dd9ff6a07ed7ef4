package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/platform/logger"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx. SQL stores accept
// it so the same code runs on the pool or inside InTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ReadOnly is used for multi-statement reads, e.g. a podcast with its episodes.
var ReadOnly = &sql.TxOptions{ReadOnly: true}

// InTx runs fn inside a transaction on db. The transaction commits when fn
// returns nil and rolls back otherwise, including when fn panics. fn's error
// is returned unchanged unless the rollback itself fails, in which case both
// are joined.
func InTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(context.Context, DBTX) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		log.Error("begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		p := recover()
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error("rollback transaction", slog.String("error", rbErr.Error()))
			if p == nil {
				err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
			}
		}
		if p != nil {
			log.Error("transaction aborted by panic", slog.Any("panic", p))
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		log.Debug("transaction rolled back", slog.String("error", err.Error()))
		return err
	}

	committed = true
	if err = tx.Commit(); err != nil {
		log.Error("commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
