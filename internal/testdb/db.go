//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/podcast-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// Timeout bounds connection and migration setup.
const Timeout = 30 * time.Second

var resetOnce sync.Once

// URL returns the integration database URL, or "" when none is configured.
func URL() string {
	return os.Getenv("DATABASE_URL")
}

// Open connects to URL and migrates the schema up, skipping t when no
// database is configured. The schema is reset once per test binary so runs
// start from empty tables. The connection is closed on cleanup.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	url := URL()
	if url == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	db, err := postgres.Open(ctx, url)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	var resetErr error
	resetOnce.Do(func() {
		resetErr = postgres.Migrate(ctx, db, "reset", nil)
	})
	require.NoError(t, resetErr, "failed to reset schema")
	require.NoError(t, postgres.Migrate(ctx, db, "up", nil), "failed to migrate schema")

	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so
// tests do not see each other's rows.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
