package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetApplication returns the denormalized view. Non-admin callers only
// see their own applications; a row owned by someone else yields the same
// not-found response as a nonexistent id.
func (ac *ApplicationController) GetApplication(c *fiber.Ctx) error {
	payload := middleware.CurrentUser(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"data":    nil,
			"error":   "Missing or invalid token.",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid application ID.",
		})
	}

	application, err := ac.ApplicationRepo.GetApplicationByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Application not found",
				"data":    nil,
				"error":   "Application does not exist.",
			})
		}
		config.Logger.Error("Failed to fetch application", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch application",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	// A row owned by someone else yields the same response as a
	// nonexistent one.
	if !middleware.VerifyUserPermission(payload, application.UserID, true) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Application not found",
			"data":    nil,
			"error":   "Application does not exist.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Application retrieved successfully",
		"data":    applicationResponse(application),
		"error":   nil,
	})
}
