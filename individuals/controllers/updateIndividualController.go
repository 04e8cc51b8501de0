package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/individuals/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateIndividual applies a partial update; only fields present in the
// body are written.
func (ic *IndividualController) UpdateIndividual(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid individual ID.",
		})
	}

	var req IndividualRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	updates := map[string]interface{}{}
	if req.ChineseLastName != nil && *req.ChineseLastName != "" {
		updates["chinese_last_name"] = *req.ChineseLastName
	}
	if req.ChineseFirstName != nil && *req.ChineseFirstName != "" {
		updates["chinese_first_name"] = *req.ChineseFirstName
	}
	if req.EnglishLastName != nil {
		updates["english_last_name"] = *req.EnglishLastName
	}
	if req.EnglishFirstName != nil {
		updates["english_first_name"] = *req.EnglishFirstName
	}
	if req.NationalID != nil && *req.NationalID != "" {
		updates["national_id"] = *req.NationalID
	}
	if req.Gender != nil {
		gender, err := parseGender(*req.Gender)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"data":    nil,
				"error":   err.Error(),
			})
		}
		if gender != nil {
			updates["gender"] = *gender
		}
	}

	for _, field := range []struct {
		value  *string
		column string
	}{
		{req.PassportInfoImage, "passport_info_image"},
		{req.IDCardFrontImage, "id_card_front_image"},
		{req.IDCardBackImage, "id_card_back_image"},
	} {
		if field.value == nil || *field.value == "" {
			continue
		}
		decoded, err := services.DecodeImageData(*field.value)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"data":    nil,
				"error":   field.column + ": " + err.Error(),
			})
		}
		updates[field.column] = decoded
	}

	individual, err := ic.IndividualRepo.UpdateIndividual(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Individual not found",
				"data":    nil,
				"error":   "Individual does not exist.",
			})
		}
		config.Logger.Error("Failed to update individual", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update individual",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Individual updated successfully",
		"data":    individualResponse(individual),
		"error":   nil,
	})
}
