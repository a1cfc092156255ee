package response

import "github.com/gofiber/fiber/v3"

// Error bodies use one of two keys. Validation, permission, and lookup
// failures report under "error"; token and credential failures report
// under "message".
const (
	KeyError   = "error"
	KeyMessage = "message"
)

const (
	MessageTokenMissing        = "Token is missing"
	MessageTokenInvalid        = "Token is invalid"
	MessageInvalidCredentials  = "Invalid email or password"
	MessageBadRequest          = "Bad request"
	MessageInternalServerError = "Internal server error"
)

func JSON(c fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(payload)
}

func Fail(c fiber.Ctx, status int, key, message string) error {
	if key != KeyMessage {
		key = KeyError
	}
	return c.Status(status).JSON(map[string]string{key: message})
}
