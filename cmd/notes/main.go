// Package main реализует точку входа службы заметок и досок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/cache"
	httpServer "noteboard/internal/notes/adapters/http"
	"noteboard/internal/notes/adapters/http/common"
	"noteboard/internal/notes/adapters/postgres"
	"noteboard/internal/notes/app"
	"noteboard/internal/notes/config"
	"noteboard/internal/notes/db"
	cacheport "noteboard/internal/notes/ports/cache"
	"noteboard/pkg/db/redis"
	"noteboard/pkg/logger"
	"noteboard/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "board cache disabled"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, cfg.Migrations.Dir)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory()
		boardRepo := repoFactory.BoardRepository()
		noteRepo := repoFactory.NoteRepository()

		log.Info(ctx, LogInitCache)
		boardCache, err := newCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitUseCases)
		boardUseCase := app.NewBoardUseCase(boardRepo, noteRepo, boardCache, cfg.Redis.DefaultTTL)
		noteUseCase := app.NewNoteUseCase(noteRepo, boardRepo, boardCache, cfg.Redis.DefaultTTL)

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			ErrorHandler: common.ErrorHandler,
		})

		httpServer.SetupRouter(server, boardUseCase, noteUseCase, postgres.NewSessionProvider(database), database)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.WaitStages(ctx, cfg.Shutdown.GetTimeout(),
			shutdown.Stage{
				func(ctx context.Context) error {
					log.Info(ctx, LogStoppingHTTP)
					return server.ShutdownWithContext(ctx)
				},
			},
			shutdown.Stage{
				func(ctx context.Context) error {
					log.Info(ctx, LogClosingCache)
					return boardCache.Close()
				},
				func(ctx context.Context) error {
					log.Info(ctx, LogClosingDB)
					database.Close(ctx)
					return nil
				},
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func newCache(ctx context.Context, cfg *config.RedisConfig) (cacheport.Cache, error) {
	if !cfg.Enabled {
		logger.Log(ctx).Info(ctx, LogCacheDisabled)
		return cache.NewNopCache(), nil
	}

	clientCfg := cfg.ClientConfig()
	client, err := redis.NewClient(ctx, &clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCreateRedisClient, err)
	}

	return cache.NewRedisCache(client, cfg.DefaultTTL), nil
}
