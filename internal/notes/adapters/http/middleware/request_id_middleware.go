// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"noteboard/internal/notes/adapters/http/common"
	"noteboard/pkg/logger"
)

// NewRequestIDMiddleware берет идентификатор запроса из заголовка X-Request-ID
// или генерирует новый и возвращает его в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(common.HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.Locals(common.LocalRequestID, requestID)
		ctx.Set(common.HeaderRequestID, requestID)

		return ctx.Next()
	}
}
