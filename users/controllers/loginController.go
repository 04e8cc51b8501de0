package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/token"
	"github.com/YiChiaPeng/ryan-travel-agency/users/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/users/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (ac *AuthController) LoginUser(c *fiber.Ctx) error {
	var req services.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	user, err := ac.UserRepo.GetUserByUsername(req.Username)
	if err != nil || !repositories.CheckPasswordHash(req.Password, user.Password) {
		if err != nil {
			config.Logger.Warn("Login attempt: user not found or database error",
				zap.String("username", req.Username),
				zap.Error(err),
			)
		} else {
			config.Logger.Warn("Login attempt: invalid password",
				zap.String("username", req.Username),
			)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid username or password.",
		})
	}

	accessToken, err := ac.PasetoMaker.CreateToken(user, token.AccessTokenDuration)
	if err != nil {
		config.Logger.Error("Failed to create access token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Login failed",
			"data":    nil,
			"error":   "Could not create session.",
		})
	}

	refreshToken := uuid.NewString()
	if ac.RedisClient != nil {
		err = ac.RedisClient.Set(ac.Ctx, refreshTokenPrefix+refreshToken, user.ID.String(), refreshTokenDuration).Err()
		if err != nil {
			config.Logger.Error("Failed to store refresh token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Login failed",
				"data":    nil,
				"error":   "Could not create session.",
			})
		}
	}

	config.Logger.Info("User logged in",
		zap.String("userID", user.ID.String()),
		zap.String("company", user.CompanyName),
	)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"id":            user.ID.String(),
			"username":      user.Username,
			"company_name":  user.CompanyName,
			"role":          user.Role,
			"is_admin":      user.IsAdmin(),
			"token":         accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	})
}
