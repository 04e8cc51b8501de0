package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/extraction/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LLMExtractPassportInfo parses already-transcribed passport text into
// structured fields.
func (ec *ExtractionController) LLMExtractPassportInfo(c *fiber.Ctx) error {
	if ec.Gemini == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Extraction unavailable",
			"data":    nil,
			"error":   "Extraction service is not configured.",
		})
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "A text field is required.",
		})
	}

	prompt := services.ExtractionPrompt + "\n\nPassport text:\n" + req.Text
	response, err := ec.Gemini.GenerateContentWithRetry(c.UserContext(), prompt, nil)
	if err != nil {
		config.Logger.Error("Passport info extraction failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Extraction failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	info, err := services.ParsePassportInfo(response)
	if err != nil {
		config.Logger.Error("Failed to parse extraction response", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Extraction failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Passport info extracted successfully",
		"data":    info,
		"error":   nil,
	})
}

// LLMTest reports whether the extraction backend is wired up.
func (ec *ExtractionController) LLMTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "LLM service status",
		"data": fiber.Map{
			"available": ec.Gemini != nil,
		},
		"error": nil,
	})
}
