package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/http/common"
	"noteboard/internal/notes/adapters/http/dto"
	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// NewSessionMiddleware открывает соединение с БД на время запроса
// и возвращает его в пул при любом исходе обработки, включая панику.
func NewSessionMiddleware(provider repositories.SessionProvider) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := common.RequestContext(ctx)

		session, err := provider.Open(requestCtx)
		if err != nil {
			logger.Log(requestCtx).Error(requestCtx, "failed to open database session", zap.Error(err))
			return common.Respond(ctx, fiber.StatusServiceUnavailable, dto.ErrorResponse{
				Detail: common.ErrMsgInternal,
			})
		}
		defer func() {
			ctx.Locals(common.LocalSession, nil)
			session.Release()
		}()

		ctx.Locals(common.LocalSession, repositories.DB(session))

		return ctx.Next()
	}
}
