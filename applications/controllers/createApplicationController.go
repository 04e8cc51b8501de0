package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/applications/requests"
	"github.com/YiChiaPeng/ryan-travel-agency/applications/services"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ac *ApplicationController) CreateApplication(c *fiber.Ctx) error {
	payload := middleware.CurrentUser(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"data":    nil,
			"error":   "Missing or invalid token.",
		})
	}

	var req requests.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing application request body", zap.Error(err))
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

	individual, err := individualFromRequest(req.IndividualData)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	application := &models.Application{
		UserID:          payload.UserID,
		ApplicationType: models.ApplicationType(req.ApplicationType),
		Urgency:         models.Urgency(req.Urgency),
		CustomerName:    req.CustomerName,
	}
	if req.Status != nil {
		application.Status = models.ApplicationStatus(*req.Status)
	}
	if req.Reason != nil {
		application.Reason = req.Reason
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
		application.ApplicationDate = date
	}

	created, action, err := ac.ApplicationRepo.CreateApplication(application, individual)
	if err != nil {
		config.Logger.Error("Failed to create application",
			zap.String("userID", payload.UserID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create application",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	if ac.SearchRepo != nil {
		// Indexing failures never fail the request.
		_ = ac.SearchRepo.IndexSingleIndividual(*individual)
		_ = ac.SearchRepo.IndexSingleApplication(*created)
	}

	config.Logger.Info("Application created",
		zap.String("applicationID", created.ID.String()),
		zap.String("individualAction", string(action)),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Application created successfully",
		"data": fiber.Map{
			"application_id":    created.ID.String(),
			"individual_id":     created.IndividualID.String(),
			"individual_action": string(action),
			"status":            created.Status,
		},
		"error": nil,
	})
}
