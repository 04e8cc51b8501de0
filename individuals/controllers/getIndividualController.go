package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (ic *IndividualController) GetIndividual(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid individual ID.",
		})
	}

	individual, err := ic.IndividualRepo.GetIndividualByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Individual not found",
				"data":    nil,
				"error":   "Individual does not exist.",
			})
		}
		config.Logger.Error("Failed to fetch individual", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch individual",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Individual retrieved successfully",
		"data":    individualResponse(individual),
		"error":   nil,
	})
}
