package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/applications/requests"
	"github.com/YiChiaPeng/ryan-travel-agency/applications/services"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateApplicationStatus is the admin review action. The owning account
// is notified by email after the change commits.
func (ac *ApplicationController) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid application ID.",
		})
	}

	var req requests.UpdateStatusRequest
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

	var substatus *models.ApplicationSubstatus
	if req.Substatus != nil {
		s := models.ApplicationSubstatus(*req.Substatus)
		substatus = &s
	}

	application, err := ac.ApplicationRepo.UpdateApplicationStatus(id, models.ApplicationStatus(req.Status), substatus, req.Reason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Application not found",
				"data":    nil,
				"error":   "Application does not exist.",
			})
		}
		config.Logger.Error("Failed to update application status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update application status",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	if ac.SearchRepo != nil {
		_ = ac.SearchRepo.IndexSingleApplication(*application)
	}

	go services.NotifyStatusChange(application)

	return c.JSON(fiber.Map{
		"message": "Application status updated successfully",
		"data":    applicationResponse(application),
		"error":   nil,
	})
}
