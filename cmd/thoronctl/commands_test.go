package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/testutil"
)

func testConfig(env string) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		return &config.Config{
			DatabaseDriver: config.DriverSQLite,
			DatabaseURL:    "ignored.db",
			Environment:    env,
			LogLevel:       "error",
		}, nil
	}
}

func run(t *testing.T, env string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(testConfig(env))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func openDB(t *testing.T, path string) *database.Database {
	t.Helper()
	db, err := database.NewPool(context.Background(), config.DriverSQLite, path, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateSeedAndStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.db")

	out, err := run(t, config.EnvTesting, "--database-url", path, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")

	out, err = run(t, config.EnvTesting, "--database-url", path, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Migrations applied.")

	out, err = run(t, config.EnvTesting, "--database-url", path, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "applied")
	assert.NotContains(t, out, "pending")

	_, err = run(t, config.EnvTesting, "--database-url", path, "seed")
	require.NoError(t, err)
	_, err = run(t, config.EnvTesting, "--database-url", path, "seed")
	require.NoError(t, err)

	db := openDB(t, path)
	assert.Equal(t, 6, testutil.Count(t, db, "carriers"))
	assert.Equal(t, 6, testutil.Count(t, db, "shipments"))
	assert.Equal(t, 5, testutil.Count(t, db, "users"))
}

func TestResetTracking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.db")
	_, err := run(t, config.EnvDevelopment, "--database-url", path, "migrate", "up")
	require.NoError(t, err)
	_, err = run(t, config.EnvDevelopment, "--database-url", path, "seed")
	require.NoError(t, err)

	db := openDB(t, path)
	testutil.Exec(t, db, `DELETE FROM shipment_events`)

	out, err := run(t, config.EnvDevelopment, "--database-url", path, "reset", "tracking")
	require.NoError(t, err)
	assert.Contains(t, out, "Shipments and events seeded.")
	assert.Equal(t, 14, testutil.Count(t, db, "shipment_events"))
}

func TestReset_RefusedInProduction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.db")
	_, err := run(t, config.EnvProduction, "--database-url", path, "migrate", "up")
	require.NoError(t, err)

	_, err = run(t, config.EnvProduction, "--database-url", path, "reset", "carriers")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disabled in production"), err.Error())
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := run(t, config.EnvTesting, "--driver", "mysql", "seed")
	require.Error(t, err)
}
