//go:build integration

// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests call Open to get a migrated database (skipping when DATABASE_URL is
// unset) and WithTx to run against a transaction that is always rolled back:
//
//	func TestIntegration_Feature(t *testing.T) {
//	    db := testdb.Open(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, hasher, nil)
//	        ...
//	    })
//	}
package testdb
