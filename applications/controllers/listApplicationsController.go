package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validStatuses = map[string]models.ApplicationStatus{
	string(models.DraftStatus):             models.DraftStatus,
	string(models.PendingReviewStatus):     models.PendingReviewStatus,
	string(models.NeedsResubmissionStatus): models.NeedsResubmissionStatus,
	string(models.SubmittedStatus):         models.SubmittedStatus,
	string(models.CompletedStatus):         models.CompletedStatus,
}

// ListApplications returns the caller's own applications, newest first,
// optionally filtered by status and individual name.
func (ac *ApplicationController) ListApplications(c *fiber.Ctx) error {
	payload := middleware.CurrentUser(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"data":    nil,
			"error":   "Missing or invalid token.",
		})
	}

	filters := repositories.ListFilters{
		IndividualName: c.Query("individual_name"),
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := validStatuses[raw]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request",
				"data":    nil,
				"error":   "Unknown status filter.",
			})
		}
		filters.Status = &status
	}

	applications, err := ac.ApplicationRepo.ListByUser(payload.UserID, filters)
	if err != nil {
		config.Logger.Error("Failed to list applications",
			zap.String("userID", payload.UserID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list applications",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	items := make([]fiber.Map, 0, len(applications))
	for i := range applications {
		items = append(items, applicationResponse(&applications[i]))
	}

	return c.JSON(fiber.Map{
		"message": "Applications retrieved successfully",
		"data": fiber.Map{
			"applications": items,
			"total":        len(items),
		},
		"error": nil,
	})
}
