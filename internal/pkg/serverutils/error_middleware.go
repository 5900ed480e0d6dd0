package serverutils

import (
	"errors"

	"babybook-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// JSON responses. AppError kinds map onto HTTP statuses; anything else
// is a 500 with a generic message so internals never leak.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ae *apperror.AppError
		if errors.As(err, &ae) {
			message := ae.Message
			// Store failures keep the driver message so clients can
			// tell a constraint collision from an outage.
			if ae.Kind == apperror.KindPersistenceFailed && ae.Err != nil {
				message = ae.Error()
			}
			return ctx.Status(statusFor(ae.Kind)).JSON(ErrorResponse(message, ae.Violations))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Message, nil))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error", nil))
	}
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperror.KindUnauthorized:
		return fiber.StatusForbidden
	case apperror.KindValidationFailed:
		return fiber.StatusUnprocessableEntity
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindPersistenceFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
