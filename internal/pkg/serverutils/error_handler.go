package serverutils

import (
	"errors"

	"vendor-marketplace-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error to the HTTP status the API reports for it.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}

	switch apperror.KindOf(err) {
	case apperror.KindNotFound, apperror.KindNoSubscription:
		return fiber.StatusNotFound
	case apperror.KindInvalidInput:
		return fiber.StatusBadRequest
	case apperror.KindConflict, apperror.KindQuotaExhausted:
		return fiber.StatusConflict
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindForbidden:
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

// WriteError renders err in the standard envelope. Internal errors never leak their cause.
func WriteError(ctx *fiber.Ctx, err error) error {
	status := StatusFor(err)

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(status).JSON(ValidationErrorResponse("Validation failed", validationErr.Fields))
	}

	message := err.Error()
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == fiber.StatusInternalServerError {
		message = "Internal server error"
	}
	return ctx.Status(status).JSON(ErrorResponse(status, message))
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	return WriteError(ctx, err)
}

// ErrorHandlerMiddleware converts errors returned by downstream handlers into envelopes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return WriteError(ctx, err)
		}
		return nil
	}
}
