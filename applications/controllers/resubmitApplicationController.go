package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/applications/requests"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResubmitApplication lets the owner push an application that needs
// resubmission back into review. The note is appended to the stored
// resubmission history.
func (ac *ApplicationController) ResubmitApplication(c *fiber.Ctx) error {
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

	var req requests.ResubmitRequest
	_ = c.BodyParser(&req)

	var ownerID *uuid.UUID
	if !payload.IsAdmin {
		ownerID = &payload.UserID
	}

	application, err := ac.ApplicationRepo.ResubmitApplication(id, ownerID, req.Note)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Application not found",
				"data":    nil,
				"error":   "Application does not exist.",
			})
		}
		config.Logger.Error("Failed to resubmit application", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to resubmit application",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	if ac.SearchRepo != nil {
		_ = ac.SearchRepo.IndexSingleApplication(*application)
	}

	return c.JSON(fiber.Map{
		"message": "Application resubmitted successfully",
		"data":    applicationResponse(application),
		"error":   nil,
	})
}
