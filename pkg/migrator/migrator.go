package migrator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/thoron/migrations"
	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/logger"
)

// Migrator applies the embedded goose migrations for one driver. It uses the
// goose Provider API, which keeps no package-level state, so several databases
// can be migrated concurrently (one per test).
type Migrator struct {
	provider *goose.Provider
	log      logger.Logger
}

// New returns a Migrator for db using the migrations embedded for driver.
func New(db *sql.DB, driver string, log logger.Logger) (*Migrator, error) {
	files, err := migrations.For(driver)
	if err != nil {
		return nil, err
	}

	dialect := goose.DialectSQLite3
	if driver == config.DriverPostgres {
		dialect = goose.DialectPostgres
	}

	provider, err := goose.NewProvider(dialect, db, files, goose.WithSlog(log.ToSlog()))
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return &Migrator{provider: provider, log: log}, nil
}

// Up applies every pending migration and logs each one that ran.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	for _, r := range results {
		m.log.Info("migration applied",
			"source", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	return nil
}

// Status reports every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	return statuses, nil
}

// RunMigrations is the one-shot form used at process startup.
func RunMigrations(ctx context.Context, db *sql.DB, driver string, log logger.Logger) error {
	m, err := New(db, driver, log)
	if err != nil {
		return err
	}
	return m.Up(ctx)
}
