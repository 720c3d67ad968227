// Package testutil provides helpers shared by storage-backed tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/migrator"
)

// Logger returns a logger that only emits errors, keeping test output quiet.
func Logger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// NewTestDB opens a fresh SQLite database file under t.TempDir() with all
// migrations applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()
	log := Logger()

	path := filepath.Join(t.TempDir(), "thoron.db")
	db, err := database.NewPool(ctx, config.DriverSQLite, path, log)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := migrator.RunMigrations(ctx, db.DB(), config.DriverSQLite, log); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// Exec runs a statement against db and fails the test on error.
func Exec(t *testing.T, db *database.Database, query string, args ...any) {
	t.Helper()
	if _, err := db.DB().ExecContext(context.Background(), query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

// Count returns SELECT COUNT(*) FROM table.
func Count(t *testing.T, db *database.Database, table string) int {
	t.Helper()
	var n int
	if err := db.DB().QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// NewTestApp returns an Application over a fresh test database with the cache
// and event bus disabled.
func NewTestApp(t *testing.T) *app.Application {
	t.Helper()
	return &app.Application{
		Config: &config.Config{
			DatabaseDriver:   config.DriverSQLite,
			Environment:      config.EnvTesting,
			LogLevel:         "error",
			MaxLoadWeightLbs: 45000,
		},
		Db:     NewTestDB(t),
		Logger: Logger(),
	}
}
