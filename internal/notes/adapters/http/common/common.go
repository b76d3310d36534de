// Package common содержит общие для HTTP-обработчиков функции.
package common

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/http/dto"
	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// Ключи значений в fiber.Ctx.Locals.
const (
	LocalRequestID = "requestID"
	LocalSession   = "dbSession"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// Сообщения об ошибках.
const (
	ErrMsgInvalidRequest  = "invalid request parameters"
	ErrMsgInternal        = "Internal Server Error"
	ErrMsgNoSession       = "database session is not available"
	ErrMsgSendingResponse = "error sending response"
)

// domainErrors - ошибки, которые клиент получает как 404 с текстом ошибки.
var domainErrors = []error{
	entities.ErrBoardNotFound,
	entities.ErrNoteNotFound,
	entities.ErrNoteNotOnBoard,
}

// ErrNoSession возвращается, если middleware сессии не подключен к маршруту.
var ErrNoSession = errors.New(ErrMsgNoSession)

// RequestContext возвращает контекст запроса с его идентификатором.
func RequestContext(c fiber.Ctx) context.Context {
	requestID, _ := c.Locals(LocalRequestID).(string)
	return logger.NewRequestIDContext(c.Context(), requestID)
}

// Session возвращает соединение с БД, открытое для текущего запроса.
func Session(c fiber.Ctx) (repositories.DB, error) {
	session, ok := c.Locals(LocalSession).(repositories.DB)
	if !ok || session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// ParseID читает целочисленный параметр пути.
func ParseID(c fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return id, nil
}

// Bind заполняет req из JSON-тела, а при пустом теле - из query-параметров.
func Bind(c fiber.Ctx, req any) error {
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(req); err != nil {
			return fmt.Errorf("binding JSON: %w", err)
		}
		return nil
	}
	if err := c.Bind().Query(req); err != nil {
		return fmt.Errorf("binding query: %w", err)
	}
	return nil
}

// Respond отправляет JSON-ответ с указанным статусом.
func Respond(c fiber.Ctx, status int, body any) error {
	if err := c.Status(status).JSON(body); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSendingResponse, err)
	}
	return nil
}

// InvalidRequest отвечает 422 с описанием ошибки валидации.
func InvalidRequest(c fiber.Ctx, detail string) error {
	return Respond(c, fiber.StatusUnprocessableEntity, dto.ErrorResponse{Detail: detail})
}

// HandleError преобразует ошибку прикладного слоя в HTTP-ответ.
func HandleError(c fiber.Ctx, log *logger.Logger, err error) error {
	ctx := RequestContext(c)

	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			log.Debug(ctx, "request rejected", zap.Error(err))
			return Respond(c, fiber.StatusNotFound, dto.ErrorResponse{Detail: domainErr.Error()})
		}
	}

	log.Error(ctx, "request failed", zap.Error(err))
	return Respond(c, fiber.StatusInternalServerError, dto.ErrorResponse{Detail: ErrMsgInternal})
}

// ErrorHandler - обработчик ошибок fiber, отвечающий в формате {"detail": ...}.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return Respond(c, fiberErr.Code, dto.ErrorResponse{Detail: fiberErr.Message})
	}
	return Respond(c, fiber.StatusInternalServerError, dto.ErrorResponse{Detail: ErrMsgInternal})
}
