package middleware

import (
	"strings"

	"github.com/sananasgarov/NummixAzBackend/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	ContextClaimsKey  = "jwtClaims"
	ContextAdminIDKey = "adminID"
)

// RequireAuth gates write endpoints behind a bearer session token. A missing
// credential is a 401; a malformed, tampered or expired one is a 403.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "token not provided", nil)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid Authorization header", nil)
		}

		claims, err := utils.VerifySessionToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "invalid or expired token", nil)
		}

		c.Locals(ContextClaimsKey, claims)
		c.Locals(ContextAdminIDKey, claims.AdminID)

		return c.Next()
	}
}

func GetSessionClaims(c *fiber.Ctx) (*utils.SessionClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.SessionClaims)
	return claims, ok
}
