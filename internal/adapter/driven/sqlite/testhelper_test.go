package sqlite

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated in-memory database private to the test.
// Both pools reach the same memory database through cache=shared, and the
// test name keeps parallel tests apart.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	params := url.Values{"mode": {"memory"}, "cache": {"shared"}}
	dsn := buildDSN(url.PathEscape(t.Name()), params)

	db, err := openDB(context.Background(), dsn, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer))
	return db
}
