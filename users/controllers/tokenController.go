package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ValidateToken checks an access token without side effects and echoes
// back the claims the frontend relies on.
func (ac *AuthController) ValidateToken(c *fiber.Ctx) error {
	type ValidateRequest struct {
		Token string `json:"token"`
	}

	var req ValidateRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Token is required.",
		})
	}

	payload, err := ac.PasetoMaker.VerifyToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token invalid",
			"data":    fiber.Map{"valid": false},
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Token valid",
		"data": fiber.Map{
			"valid":        true,
			"user_id":      payload.UserID.String(),
			"username":     payload.Username,
			"company_name": payload.Company,
			"role":         payload.Role,
			"is_admin":     payload.IsAdmin,
			"expires_at":   payload.ExpiredAt,
		},
		"error": nil,
	})
}

// RefreshToken exchanges a stored refresh token for a fresh access token.
// Refresh tokens are single use: the presented one is deleted and a new
// one issued in the same exchange.
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refresh_token"`
	}

	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Refresh token is required.",
		})
	}

	if ac.RedisClient == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Refresh unavailable",
			"data":    nil,
			"error":   "Session store is not configured.",
		})
	}

	key := refreshTokenPrefix + req.RefreshToken
	userID, err := ac.RedisClient.Get(ac.Ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			config.Logger.Error("Failed to look up refresh token", zap.Error(err))
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Refresh failed",
			"data":    nil,
			"error":   "Refresh token is invalid or expired.",
		})
	}

	// Single use: revoke before issuing replacements.
	if err := ac.RedisClient.Del(ac.Ctx, key).Err(); err != nil {
		config.Logger.Warn("Failed to delete used refresh token", zap.Error(err))
	}

	user, err := ac.UserRepo.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Refresh failed",
			"data":    nil,
			"error":   "User no longer exists.",
		})
	}

	accessToken, err := ac.PasetoMaker.CreateToken(user, token.AccessTokenDuration)
	if err != nil {
		config.Logger.Error("Failed to create access token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Refresh failed",
			"data":    nil,
			"error":   "Could not create session.",
		})
	}

	newRefreshToken := uuid.NewString()
	err = ac.RedisClient.Set(ac.Ctx, refreshTokenPrefix+newRefreshToken, user.ID.String(), refreshTokenDuration).Err()
	if err != nil {
		config.Logger.Error("Failed to store refresh token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Refresh failed",
			"data":    nil,
			"error":   "Could not create session.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Token refreshed",
		"data": fiber.Map{
			"token":         accessToken,
			"refresh_token": newRefreshToken,
		},
		"error": nil,
	})
}
