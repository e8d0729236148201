package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tinyguard/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "tinyguard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBlockingStateRepository(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewBlockingStateRepository(openTestDB(t))

	enabled, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, enabled, "missing flag reads as disabled")

	require.NoError(t, repo.Set(ctx, true))
	enabled, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, repo.Set(ctx, false))
	enabled, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestBlockingStateRepository_Persists(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "tinyguard.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewBlockingStateRepository(db).Set(ctx, true))
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	enabled, err := sqlite.NewBlockingStateRepository(db).Get(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestNewConnection_Pragmas(t *testing.T) {
	db := openTestDB(t)

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestSchemaVersion(t *testing.T) {
	db := openTestDB(t)

	version, err := sqlite.SchemaVersion(testCtx(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Running again on a migrated database is a no-op.
	require.NoError(t, sqlite.RunMigrations(testCtx(), db))
	version, err = sqlite.SchemaVersion(testCtx(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
