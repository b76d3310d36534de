package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"

	"noteboard/internal/notes/config"
	"noteboard/internal/notes/db"
	"noteboard/pkg/db/postgres"
	"noteboard/pkg/logger"
)

const (
	ErrUnpatchMsg  = "failed to unpatch"
	MigrationsPath = "./migrations/notes"
)

var (
	errMigration  = errors.New("migration error")
	errConnection = errors.New("connection error")
)

func safeUnpatch(t *testing.T, p *mpatch.Patch) {
	t.Helper()
	if err := p.Unpatch(); err != nil {
		t.Errorf("%s: %v", ErrUnpatchMsg, err)
	}
}

func testConfig() *config.PostgresConfig {
	return &config.PostgresConfig{
		Host:     "testhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		MinConn:  1,
		MaxConn:  10,
	}
}

func TestNew(t *testing.T) {
	require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Development, "info"))

	ctx := context.Background()

	t.Run("migration error", func(t *testing.T) {
		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
			return errMigration
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)

		require.Error(t, err)
		assert.Nil(t, database)
		require.ErrorContains(t, err, db.ErrDBMigrations)
		assert.ErrorIs(t, err, errMigration)
	})

	t.Run("database connection error", func(t *testing.T) {
		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
			return nil, errConnection
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)

		require.Error(t, err)
		assert.Nil(t, database)
		require.ErrorContains(t, err, db.ErrDBConnection)
		assert.ErrorIs(t, err, errConnection)
	})

	t.Run("relative migrations dir is resolved to an absolute file url", func(t *testing.T) {
		var gotURL, gotPath string
		migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, dsn, path string) error {
			gotURL, gotPath = dsn, path
			return nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, migratePatch)

		newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
			return &postgres.Database{}, nil
		})
		require.NoError(t, err)
		defer safeUnpatch(t, newPatch)

		database, err := db.New(ctx, testConfig(), MigrationsPath)
		require.NoError(t, err)
		require.NotNil(t, database)

		absPath, err := filepath.Abs(MigrationsPath)
		require.NoError(t, err)
		assert.Equal(t, "file://"+absPath, gotPath)
		assert.Equal(t, testConfig().GetConnectionURL(), gotURL)
	})
}

func TestClose(t *testing.T) {
	require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Development, "info"))

	ctx := context.Background()
	closeCalled := false

	closePatch, err := mpatch.PatchInstanceMethodByName(reflect.TypeOf(&postgres.Database{}), "Close", func(_ *postgres.Database, _ context.Context) {
		closeCalled = true
	})
	require.NoError(t, err)
	defer safeUnpatch(t, closePatch)

	migratePatch, err := mpatch.PatchMethod(postgres.MigrateDSN, func(_ context.Context, _, _ string) error {
		return nil
	})
	require.NoError(t, err)
	defer safeUnpatch(t, migratePatch)

	newPatch, err := mpatch.PatchMethod(postgres.New, func(_ context.Context, _ string, _, _ int) (*postgres.Database, error) {
		return &postgres.Database{}, nil
	})
	require.NoError(t, err)
	defer safeUnpatch(t, newPatch)

	database, err := db.New(ctx, testConfig(), "/abs/migrations")
	require.NoError(t, err)

	database.Close(ctx)

	assert.True(t, closeCalled, "close method should be called")
}
