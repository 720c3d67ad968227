package database_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/testutil"
)

// newPool opens a bare SQLite pool with a parent/child pair of tables.
func newPool(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewPool(context.Background(), config.DriverSQLite,
		filepath.Join(t.TempDir(), "db.sqlite"), testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.DB().Exec(`
		CREATE TABLE carriers (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE);
		CREATE TABLE shipments (id INTEGER PRIMARY KEY, carrier_id INTEGER REFERENCES carriers (id));`)
	require.NoError(t, err)
	return db
}

func countCarriers(t *testing.T, db *database.Database) int {
	t.Helper()
	var n int
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM carriers`).Scan(&n))
	return n
}

func TestNewPool_UnsupportedDriver(t *testing.T) {
	_, err := database.NewPool(context.Background(), "mysql", "x", testutil.Logger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database driver "mysql"`)
}

func TestNewPool_SQLite(t *testing.T) {
	db := newPool(t)
	assert.Equal(t, config.DriverSQLite, db.Driver())
	assert.NoError(t, db.Ping(context.Background()))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Regexp(t, `^thoron\.db\?_pragma=foreign_keys\(1\)`, database.SQLiteDSN("thoron.db"))
	assert.Regexp(t, `^file:thoron\.db\?mode=rwc&_pragma=foreign_keys\(1\)`, database.SQLiteDSN("file:thoron.db?mode=rwc"))
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := newPool(t)

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO carriers (name) VALUES ('XPO Logistics')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countCarriers(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := newPool(t)
	boom := errors.New("boom")

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO carriers (name) VALUES ('XPO Logistics')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countCarriers(t, db))
}

func TestWithTx_RollsBackAndRepanics(t *testing.T) {
	db := newPool(t)

	assert.PanicsWithValue(t, "mid-transaction", func() {
		_ = db.WithSerializableTx(context.Background(), func(tx *sql.Tx) error {
			_, _ = tx.Exec(`INSERT INTO carriers (name) VALUES ('Estes Express Lines')`)
			panic("mid-transaction")
		})
	})
	assert.Equal(t, 0, countCarriers(t, db))

	// The single SQLite connection must be usable again after the rollback.
	require.NoError(t, db.WithTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO carriers (name) VALUES ('Estes Express Lines')`)
		return err
	}))
}

func TestErrorClassification_SQLite(t *testing.T) {
	db := newPool(t)
	_, err := db.DB().Exec(`INSERT INTO carriers (id, name) VALUES (1, 'FedEx Freight')`)
	require.NoError(t, err)

	_, err = db.DB().Exec(`INSERT INTO carriers (name) VALUES ('FedEx Freight')`)
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err), "duplicate name: %v", err)
	assert.False(t, database.IsForeignKeyViolation(err))

	_, err = db.DB().Exec(`INSERT INTO shipments (carrier_id) VALUES (99)`)
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err), "unknown carrier: %v", err)
	assert.False(t, database.IsUniqueViolation(err))
	assert.False(t, database.IsSerializationFailure(err))
}

func TestErrorClassification_Postgres(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert shipment: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, database.IsUniqueViolation(wrap("23505")))
	assert.True(t, database.IsForeignKeyViolation(wrap("23503")))
	assert.True(t, database.IsSerializationFailure(wrap("40001")))
	assert.True(t, database.IsSerializationFailure(wrap("40P01")))
	assert.False(t, database.IsSerializationFailure(wrap("23505")))
	assert.False(t, database.IsForeignKeyViolation(errors.New("connection reset")))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1", database.Placeholders(1, 1))
	assert.Equal(t, "$4, $5, $6", database.Placeholders(4, 3))
	assert.Empty(t, database.Placeholders(1, 0))
}

func TestArgHelpers(t *testing.T) {
	assert.Equal(t, []any{int64(3), int64(9)}, database.Int64Args([]int64{3, 9}))

	id := int64(7)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, database.NullInt64(&id))
	assert.False(t, database.NullInt64(nil).Valid)

	tn := "OLD-4491-2024"
	assert.Equal(t, sql.NullString{String: tn, Valid: true}, database.NullString(&tn))
	assert.False(t, database.NullString(nil).Valid)
}
