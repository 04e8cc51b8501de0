package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ac *AuthController) RegisterUser(c *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing register request body", zap.Error(err))
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

	user := &models.User{
		Username:    req.Username,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Role:        models.UserRole,
	}

	created, err := ac.UserRepo.CreateUser(user)
	if err != nil {
		config.Logger.Warn("Failed to register user",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Registration failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	config.Logger.Info("User registered",
		zap.String("userID", created.ID.String()),
		zap.String("company", created.CompanyName),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"data": fiber.Map{
			"id":           created.ID.String(),
			"username":     created.Username,
			"company_name": created.CompanyName,
			"role":         created.Role,
		},
		"error": nil,
	})
}
