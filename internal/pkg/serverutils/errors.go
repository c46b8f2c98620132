package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status alongside a user-safe message.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NotFoundError(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func BadRequestError(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the standard JSON envelope. Unknown errors become opaque 500s so
// internal failure detail never reaches the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
