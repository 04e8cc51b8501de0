package controllers

import (
	"errors"
	"net/http"

	"github.com/YiChiaPeng/ryan-travel-agency/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var imageTypeColumns = map[string]string{
	"passport": "passport_info_image",
	"front":    "id_card_front_image",
	"back":     "id_card_back_image",
}

// GetIndividualImage streams one stored document image. The :type param
// is passport, front or back.
func (ic *IndividualController) GetIndividualImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid individual ID.",
		})
	}

	column, ok := imageTypeColumns[c.Params("type")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Image type must be passport, front or back.",
		})
	}

	data, err := ic.IndividualRepo.GetIndividualImage(id, column)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Individual not found",
				"data":    nil,
				"error":   "Individual does not exist.",
			})
		}
		config.Logger.Error("Failed to fetch individual image", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch image",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	if len(data) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Image not found",
			"data":    nil,
			"error":   "No image stored for this document type.",
		})
	}

	c.Set(fiber.HeaderContentType, http.DetectContentType(data))
	return c.Send(data)
}
