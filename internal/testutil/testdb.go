package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory store, closed at test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

// NewFileTestDB returns a migrated store in a temp directory. All pooled
// connections share it, which concurrency tests need; in-memory stores are
// pinned to one connection.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "grantbook.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the production unit of work over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
