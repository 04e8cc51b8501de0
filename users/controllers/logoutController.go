package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LogoutUser acknowledges the logout. Access tokens are stateless, so the
// only server-side work is revoking the refresh token when one is supplied.
func (ac *AuthController) LogoutUser(c *fiber.Ctx) error {
	type LogoutRequest struct {
		RefreshToken string `json:"refresh_token"`
	}

	var req LogoutRequest
	// Missing or unparseable body means nothing to revoke.
	_ = c.BodyParser(&req)

	if req.RefreshToken != "" && ac.RedisClient != nil {
		if err := ac.RedisClient.Del(ac.Ctx, refreshTokenPrefix+req.RefreshToken).Err(); err != nil {
			config.Logger.Warn("Failed to revoke refresh token", zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
		"data":    nil,
		"error":   nil,
	})
}
