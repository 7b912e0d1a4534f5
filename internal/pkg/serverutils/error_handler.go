package serverutils

import (
	"errors"
	"fmt"

	"vilaw-chatbot-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts pipeline errors into the wire format once,
// at the outermost boundary. Validation failures become 400 with the message
// as-is; every downstream failure becomes 500 with the underlying error text
// embedded in the detail.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch apperr.KindOf(err) {
		case apperr.KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": errorMessage(err),
			})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": fmt.Sprintf("Processing error: %v", err),
			})
		}
	}
}

func errorMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
