package serverutils

import (
	"errors"

	"wealth-advisor-be/internal/constant"
	"wealth-advisor-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps pipeline errors to the wire contract:
// validation failures are 400 with the exact message, everything else
// collapses to an opaque 500. Internal error details never leak into the
// response body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: validationErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: constant.ErrInternal})
	}
}
