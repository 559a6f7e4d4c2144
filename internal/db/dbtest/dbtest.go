// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/osa911/clipdesk/internal/config"
	"github.com/osa911/clipdesk/internal/db"
)

// New returns a migrated sqlite database stored in a temp dir.
// It is closed when the test finishes.
func New(t testing.TB) *db.Database {
	t.Helper()

	source := "file:" + filepath.Join(t.TempDir(), "clipdesk.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	database, err := db.OpenDriver(config.DriverSQLite, source)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return database
}
