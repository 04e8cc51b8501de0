package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListAllApplications is the admin view across every account, paginated.
func (ac *ApplicationController) ListAllApplications(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	filters := repositories.ListFilters{
		CompanyName: c.Query("company_name"),
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

	applications, total, err := ac.ApplicationRepo.ListAll(filters, params)
	if err != nil {
		config.Logger.Error("Failed to list all applications", zap.Error(err))
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
			"total":        total,
			"page":         params.Page,
			"limit":        params.PageSize,
			"pages":        pagination.TotalPages(total, params.PageSize),
		},
		"error": nil,
	})
}
