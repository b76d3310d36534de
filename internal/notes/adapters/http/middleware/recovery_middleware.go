package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/http/common"
	"noteboard/internal/notes/adapters/http/dto"
	"noteboard/pkg/logger"
)

// NewRecoveryMiddleware перехватывает панику обработчика и отвечает 500.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestCtx := common.RequestContext(ctx)
				logger.Log(requestCtx).Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				err = common.Respond(ctx, fiber.StatusInternalServerError, dto.ErrorResponse{
					Detail: common.ErrMsgInternal,
				})
			}
		}()

		return ctx.Next()
	}
}
