// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"estate-listing-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates taxonomy errors bubbling out of
// controllers into HTTP responses. Anything unclassified is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch apperrors.KindOf(err) {
		case apperrors.KindValidation:
			status = fiber.StatusBadRequest
		case apperrors.KindPolicyViolation:
			status = fiber.StatusForbidden
		case apperrors.KindConflict:
			status = fiber.StatusConflict
		case apperrors.KindNotFound:
			status = fiber.StatusNotFound
		case apperrors.KindProcessor:
			status = fiber.StatusBadGateway
		case apperrors.KindPublisher:
			// The authoritative status is already written; publication is
			// retried by the reconciliation pass.
			status = fiber.StatusInternalServerError
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
