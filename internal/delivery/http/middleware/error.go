package middleware

import (
	"errors"
	"log"

	"provider-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Key        string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewAppError builds a request failure rendered as {"error": message}.
func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Key: response.KeyError, Cause: cause}
}

// NewMessageError builds a request failure rendered as {"message": message},
// the body shape used for token and credential failures.
func NewMessageError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Key: response.KeyMessage, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Fail(c, fiber.StatusInternalServerError, response.KeyError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, key, msg := normalizeError(err)
		return response.Fail(c, status, key, msg)
	}
}

func normalizeError(err error) (int, string, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.KeyError, response.MessageInternalServerError
		}
		return status, appErr.Key, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.KeyError, response.MessageInternalServerError
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.MessageBadRequest
		}
		return status, response.KeyError, msg
	}

	return fiber.StatusInternalServerError, response.KeyError, response.MessageInternalServerError
}
