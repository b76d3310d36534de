// Package config содержит конфигурацию сервиса заметок и досок.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "noteboard/pkg/config"
	"noteboard/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName     = "notes"
	EnvConfigPath   = "NOTES_CONFIG_PATH"
	LogConfigLoaded = "notes service configuration"
	ErrLoadConfig   = "failed to load notes service configuration"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	Postgres   PostgresConfig   `yaml:"postgres"`
	HTTP       HTTPConfig       `yaml:"http"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// MigrationsConfig указывает каталог с файлами миграций.
type MigrationsConfig struct {
	Dir string `yaml:"dir" env:"NOTES_MIGRATIONS_DIR" env-default:"./migrations/notes"`
}

// Load загружает конфигурацию из файла NOTES_CONFIG_PATH, если он задан, и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	logger.Log(ctx).Debug(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("migrations_dir", cfg.Migrations.Dir))

	return cfg, nil
}
