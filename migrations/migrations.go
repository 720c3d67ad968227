// Package migrations embeds the goose SQL migrations for every supported
// database driver. Each driver has its own directory because column types and
// identity syntax differ between PostgreSQL and SQLite.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/ghuser/thoron/pkg/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// For returns the migration directory for driver, rooted so goose sees the
// .sql files at ".".
func For(driver string) (fs.FS, error) {
	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
		sub, err := fs.Sub(files, driver)
		if err != nil {
			return nil, fmt.Errorf("migrations for %s: %w", driver, err)
		}
		return sub, nil
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
