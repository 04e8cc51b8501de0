package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/applications/requests"
	"github.com/YiChiaPeng/ryan-travel-agency/applications/services"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateApplication applies a partial patch; nested individual data is
// cascaded in the same transaction, so a failure on either side leaves
// both untouched.
func (ac *ApplicationController) UpdateApplication(c *fiber.Ctx) error {
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

	var req requests.UpdateApplicationRequest
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

	updates := map[string]interface{}{}
	if req.ApplicationType != nil {
		updates["application_type"] = *req.ApplicationType
	}
	if req.Urgency != nil {
		updates["urgency"] = *req.Urgency
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Substatus != nil {
		updates["substatus"] = *req.Substatus
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}
	if req.ApplicationDate != nil {
		date, err := utils.ParseFlexibleDate(*req.ApplicationDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"data":    nil,
				"error":   "application_date: " + err.Error(),
			})
		}
		updates["application_date"] = date
	}

	individualUpdates := map[string]interface{}{}
	if req.IndividualData != nil {
		individualUpdates, err = individualUpdatesFromRequest(req.IndividualData)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"data":    nil,
				"error":   err.Error(),
			})
		}
	}

	var ownerID *uuid.UUID
	if !payload.IsAdmin {
		ownerID = &payload.UserID
	}

	application, err := ac.ApplicationRepo.UpdateApplication(id, ownerID, updates, individualUpdates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Application not found",
				"data":    nil,
				"error":   "Application does not exist.",
			})
		}
		config.Logger.Error("Failed to update application", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update application",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	if ac.SearchRepo != nil {
		_ = ac.SearchRepo.IndexSingleApplication(*application)
		_ = ac.SearchRepo.IndexSingleIndividual(application.Individual)
	}

	return c.JSON(fiber.Map{
		"message": "Application updated successfully",
		"data":    applicationResponse(application),
		"error":   nil,
	})
}
