package controllers

import (
	"errors"
	"strings"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/extraction/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExtractPassportComplete runs the full pipeline: OCR transcription of
// the image, then structured extraction over the transcribed text. When
// a step produces nothing usable the response is a 422 naming the step,
// so the caller knows whether to retake the photo or retry later.
func (ec *ExtractionController) ExtractPassportComplete(c *fiber.Ctx) error {
	if ec.Gemini == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Extraction unavailable",
			"data":    nil,
			"error":   "Extraction service is not configured.",
		})
	}

	data, mimeType, err := imageFromRequest(c)
	if err != nil {
		var fiberErr *fiber.Error
		status := fiber.StatusBadRequest
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
		return c.Status(status).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	text, err := ec.Gemini.ProcessDocumentWithPrompt(c.UserContext(), data, mimeType, services.OCRPrompt)
	if err != nil {
		config.Logger.Error("OCR step failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Extraction failed",
			"data":    fiber.Map{"step": "ocr"},
			"error":   err.Error(),
		})
	}

	if strings.TrimSpace(text) == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Extraction produced no result",
			"data":    fiber.Map{"step": "ocr"},
			"error":   "No text could be read from the image.",
		})
	}

	prompt := services.ExtractionPrompt + "\n\nPassport text:\n" + text
	response, err := ec.Gemini.GenerateContentWithRetry(c.UserContext(), prompt, nil)
	if err != nil {
		config.Logger.Error("Structured extraction step failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Extraction failed",
			"data":    fiber.Map{"step": "llm"},
			"error":   err.Error(),
		})
	}

	info, err := services.ParsePassportInfo(response)
	if err != nil {
		config.Logger.Error("Unparseable extraction response", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Extraction produced no result",
			"data":    fiber.Map{"step": "llm"},
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Passport extracted successfully",
		"data": fiber.Map{
			"passport_info": info,
			"ocr_text":      text,
		},
		"error": nil,
	})
}
