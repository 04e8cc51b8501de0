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

// DeleteApplication hard-deletes the row. The referenced individual is
// kept; other applications may point at it.
func (ac *ApplicationController) DeleteApplication(c *fiber.Ctx) error {
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

	var ownerID *uuid.UUID
	if !payload.IsAdmin {
		ownerID = &payload.UserID
	}

	if err := ac.ApplicationRepo.DeleteApplication(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Application not found",
				"data":    nil,
				"error":   "Application does not exist.",
			})
		}
		config.Logger.Error("Failed to delete application", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete application",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	if ac.SearchRepo != nil {
		_ = ac.SearchRepo.DeleteApplication(id.String())
	}

	config.Logger.Info("Application deleted",
		zap.String("applicationID", id.String()),
		zap.String("requestedBy", payload.UserID.String()),
	)

	return c.JSON(fiber.Map{
		"message": "Application deleted successfully",
		"data":    nil,
		"error":   nil,
	})
}
