// Package http содержит компоненты для HTTP сервера.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/http/boards"
	"noteboard/internal/notes/adapters/http/common"
	"noteboard/internal/notes/adapters/http/dto"
	"noteboard/internal/notes/adapters/http/middleware"
	"noteboard/internal/notes/adapters/http/notes"
	"noteboard/internal/notes/ports/api"
	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// Сообщения маршрутизатора.
const (
	ErrMsgRouteNotFound = "Route not found"
	ErrMsgUnavailable   = "Database is unavailable"
	StatusOK            = "ok"
)

// Pinger проверяет доступность базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse - ответ на проверку состояния.
type HealthResponse struct {
	Status string `json:"status"`
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	boardUseCase api.BoardUseCase,
	noteUseCase api.NoteUseCase,
	sessions repositories.SessionProvider,
	pinger Pinger,
) {
	boardsHandler := boards.NewHandler(boardUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler(pinger))

	boardRoutes := app.Group("/boards")
	boardRoutes.Use(middleware.NewSessionMiddleware(sessions))
	boardRoutes.Post("/", boardsHandler.CreateBoard)
	boardRoutes.Get("/", boardsHandler.ListBoards)
	boardRoutes.Put("/pin-note/:board_id", boardsHandler.PinNote)
	boardRoutes.Put("/unpin-note/:board_id", boardsHandler.UnpinNote)
	boardRoutes.Get("/:board_id", boardsHandler.GetBoard)
	boardRoutes.Put("/:board_id", boardsHandler.UpdateBoard)
	boardRoutes.Delete("/:board_id", boardsHandler.DeleteBoard)

	noteRoutes := app.Group("/notes")
	noteRoutes.Use(middleware.NewSessionMiddleware(sessions))
	noteRoutes.Post("/", notesHandler.CreateNote)
	noteRoutes.Get("/", notesHandler.ListNotes)
	noteRoutes.Get("/:note_id", notesHandler.GetNote)
	noteRoutes.Put("/:note_id", notesHandler.UpdateNote)
	noteRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return common.Respond(c, fiber.StatusNotFound, dto.ErrorResponse{Detail: ErrMsgRouteNotFound})
	})
}

func healthHandler(pinger Pinger) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := common.RequestContext(c)
		if err := pinger.Ping(ctx); err != nil {
			logger.Log(ctx).Error(ctx, "health check failed", zap.Error(err))
			return common.Respond(c, fiber.StatusServiceUnavailable, dto.ErrorResponse{Detail: ErrMsgUnavailable})
		}
		return common.Respond(c, fiber.StatusOK, HealthResponse{Status: StatusOK})
	}
}
