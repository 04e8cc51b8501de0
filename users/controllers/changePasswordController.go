package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/users/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	payload := middleware.CurrentUser(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"data":    nil,
			"error":   "Missing or invalid token.",
		})
	}

	var req services.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	if err := services.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	user, err := ac.UserRepo.GetUserByID(payload.UserID.String())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"data":    nil,
			"error":   "User does not exist.",
		})
	}

	if !repositories.CheckPasswordHash(req.OldPassword, user.Password) {
		config.Logger.Warn("Password change rejected: wrong current password",
			zap.String("userID", user.ID.String()),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Password change failed",
			"data":    nil,
			"error":   "Current password is incorrect.",
		})
	}

	hashed, err := repositories.HashPassword(req.NewPassword)
	if err != nil {
		config.Logger.Error("Failed to hash new password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Password change failed",
			"data":    nil,
			"error":   "Could not update password.",
		})
	}

	if err := ac.UserRepo.UpdatePassword(user.ID, hashed); err != nil {
		config.Logger.Error("Failed to update password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Password change failed",
			"data":    nil,
			"error":   "Could not update password.",
		})
	}

	config.Logger.Info("Password changed", zap.String("userID", user.ID.String()))

	return c.JSON(fiber.Map{
		"message": "Password changed successfully",
		"data":    nil,
		"error":   nil,
	})
}
