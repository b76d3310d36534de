package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/pkg/config"
)

type testConfig struct {
	Host    string        `yaml:"host" env:"TEST_LOAD_HOST" env-default:"localhost"`
	Port    int           `yaml:"port" env:"TEST_LOAD_PORT" env-default:"8000"`
	Timeout time.Duration `yaml:"timeout" env:"TEST_LOAD_TIMEOUT" env-default:"5s"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults from tags", func(t *testing.T) {
		cfg, err := config.Load[testConfig](ctx, "test", "")

		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8000, cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_LOAD_PORT", "9000")
		t.Setenv("TEST_LOAD_TIMEOUT", "250ms")

		cfg, err := config.Load[testConfig](ctx, "test", "")

		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "host: db.internal\nport: 7000\n")

		cfg, err := config.Load[testConfig](ctx, "test", path)

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("environment has priority over file", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "port: 7000\n")
		t.Setenv("TEST_LOAD_PORT", "7500")

		cfg, err := config.Load[testConfig](ctx, "test", path)

		require.NoError(t, err)
		assert.Equal(t, 7500, cfg.Port)
	})

	t.Run("missing file falls back to environment", func(t *testing.T) {
		t.Setenv("TEST_LOAD_HOST", "from-env")

		cfg, err := config.Load[testConfig](ctx, "test", filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Host)
	})

	t.Run("directory is not a config file", func(t *testing.T) {
		cfg, err := config.Load[testConfig](ctx, "test", t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("invalid environment value", func(t *testing.T) {
		t.Setenv("TEST_LOAD_PORT", "not-a-number")

		cfg, err := config.Load[testConfig](ctx, "test", "")

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "port: [unterminated\n")

		_, err := config.Load[testConfig](ctx, "test", path)

		require.Error(t, err)
	})
}
