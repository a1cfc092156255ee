package middleware

import (
	"strings"

	"provider-match/internal/pkg/response"
	"provider-match/internal/pkg/token"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

// AuthMiddleware authenticates requests; it performs no authorization.
// Role checks belong to the handlers behind it.
type AuthMiddleware struct {
	tokens token.Service
}

func NewAuthMiddleware(tokens token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewMessageError(fiber.StatusUnauthorized, response.MessageTokenMissing, nil)
		}

		claims, err := m.tokens.Validate(raw)
		if err != nil {
			return NewMessageError(fiber.StatusUnauthorized, response.MessageTokenInvalid, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

// Identity returns the authenticated user id and role stored by the
// middleware, or false when the request never passed authentication.
func Identity(c fiber.Ctx) (int64, string, bool) {
	userID, ok := c.Locals(CtxUserIDKey).(int64)
	if !ok {
		return 0, "", false
	}
	role, ok := c.Locals(CtxRoleKey).(string)
	if !ok {
		return 0, "", false
	}
	return userID, role, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}

	return tok, true
}
