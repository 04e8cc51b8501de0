package middleware

import (
	"strings"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProtectedRoute requires a valid bearer token and stores its payload in Locals("user").
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Missing authorization header.",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Invalid authorization header format.",
			})
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")
		payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
		if err != nil {
			// Log details internally, keep the client response generic
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Invalid or expired token.",
			})
		}

		c.Locals("user", payload)
		return c.Next()
	}
}

// AdminRoute requires the derived admin flag on top of a valid token.
// Must be registered after ProtectedRoute.
func AdminRoute() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, ok := c.Locals("user").(*token.Payload)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required.",
			})
		}

		if !payload.IsAdmin {
			config.Logger.Warn("Non-admin attempted admin route",
				zap.String("username", payload.Username),
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
				"error":   "Admin privileges required.",
			})
		}

		return c.Next()
	}
}

// CurrentUser pulls the verified token payload set by ProtectedRoute.
func CurrentUser(c *fiber.Ctx) *token.Payload {
	payload, _ := c.Locals("user").(*token.Payload)
	return payload
}
