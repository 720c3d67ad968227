// Package database owns the shared *sql.DB handle and its transaction helper.
// Two drivers are supported behind database/sql: PostgreSQL through the pgx
// stdlib adapter and an embedded SQLite file through modernc.org/sqlite.
// Repositories write portable SQL ($N placeholders, RETURNING) so the same
// queries run on both.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/logger"
)

// sqlitePragmas are applied to every SQLite connection. Foreign keys are off
// by default in SQLite; busy_timeout and immediate transactions keep a second
// writer waiting instead of failing with SQLITE_BUSY mid-transaction.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate&_time_format=sqlite"

// Database wraps *sql.DB with the driver it was opened with.
type Database struct {
	db     *sql.DB
	driver string
	log    logger.Logger
}

// NewPool opens a connection pool for driver at url and verifies it with Ping.
// SQLite pools are limited to a single connection so every transaction is
// serialized by the pool itself.
func NewPool(ctx context.Context, driver, url string, log logger.Logger) (*Database, error) {
	var (
		sqlDB *sql.DB
		err   error
	)
	switch driver {
	case config.DriverPostgres:
		sqlDB, err = sql.Open("pgx", url)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	case config.DriverSQLite:
		sqlDB, err = sql.Open("sqlite", SQLiteDSN(url))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return &Database{db: sqlDB, driver: driver, log: log}, nil
}

// SQLiteDSN appends the connection pragmas to a SQLite file path or DSN.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

// DB returns the underlying pool for non-transactional reads.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Driver returns the driver name the pool was opened with.
func (d *Database) Driver() string {
	return d.driver
}

// WithTx runs fn inside a transaction using the driver's default isolation.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.WithTxOptions(ctx, nil, fn)
}

// WithSerializableTx runs fn inside a SERIALIZABLE transaction on PostgreSQL.
// SQLite transactions are already serializable and are opened with
// BEGIN IMMEDIATE, so the isolation level is not passed to that driver.
func (d *Database) WithSerializableTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if d.driver == config.DriverPostgres {
		return d.WithTxOptions(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	}
	return d.WithTx(ctx, fn)
}

// WithTxOptions begins a transaction, calls fn, and commits when fn returns nil.
// The transaction is rolled back when fn returns an error or panics; the panic
// is re-raised after rollback.
func (d *Database) WithTxOptions(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.ErrorContext(ctx, "transaction rollback failed", "error", rbErr, "cause", err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}
