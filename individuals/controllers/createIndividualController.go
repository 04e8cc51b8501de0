package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/individuals/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/individuals/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateIndividual upserts on the Chinese name pair: posting the same
// name again refreshes the existing record instead of inserting a
// duplicate.
func (ic *IndividualController) CreateIndividual(c *fiber.Ctx) error {
	var req IndividualRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing individual request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	if req.ChineseLastName == nil || *req.ChineseLastName == "" ||
		req.ChineseFirstName == nil || *req.ChineseFirstName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"data":    nil,
			"error":   "chinese_last_name and chinese_first_name are required.",
		})
	}

	individual := &models.Individual{
		ChineseLastName:  *req.ChineseLastName,
		ChineseFirstName: *req.ChineseFirstName,
	}
	if req.EnglishLastName != nil {
		individual.EnglishLastName = *req.EnglishLastName
	}
	if req.EnglishFirstName != nil {
		individual.EnglishFirstName = *req.EnglishFirstName
	}
	if req.NationalID != nil && *req.NationalID != "" {
		individual.NationalID = req.NationalID
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
		individual.Gender = gender
	}

	for _, field := range []struct {
		value *string
		dest  *[]byte
		name  string
	}{
		{req.PassportInfoImage, &individual.PassportInfoImage, "passport_info_image"},
		{req.IDCardFrontImage, &individual.IDCardFrontImage, "id_card_front_image"},
		{req.IDCardBackImage, &individual.IDCardBackImage, "id_card_back_image"},
	} {
		if field.value == nil || *field.value == "" {
			continue
		}
		decoded, err := services.DecodeImageData(*field.value)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"data":    nil,
				"error":   field.name + ": " + err.Error(),
			})
		}
		*field.dest = decoded
	}

	saved, action, err := ic.IndividualRepo.CreateOrUpdateByName(individual)
	if err != nil {
		config.Logger.Error("Failed to save individual", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save individual",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	status := fiber.StatusOK
	if action == repositories.UpsertCreated {
		status = fiber.StatusCreated
	}

	data := individualResponse(saved)
	data["action"] = string(action)

	return c.Status(status).JSON(fiber.Map{
		"message": "Individual saved successfully",
		"data":    data,
		"error":   nil,
	})
}
