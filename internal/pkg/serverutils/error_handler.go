package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the last line of defense: nothing may leave
// the service as a transport-level fault. Controllers map their own
// domain errors; whatever still escapes becomes a generic envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fe, ok := err.(*fiber.Error); ok {
			return Fail(ctx, fe.Code, fe.Message)
		}

		return Fail(ctx, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
