package controllers

import (
	"errors"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/extraction/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OCRExtract transcribes every piece of text visible in the submitted
// document image.
func (ec *ExtractionController) OCRExtract(c *fiber.Ctx) error {
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
		config.Logger.Error("OCR extraction failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Extraction failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Text extracted successfully",
		"data": fiber.Map{
			"text": text,
		},
		"error": nil,
	})
}

// OCRTest reports whether the extraction backend is wired up.
func (ec *ExtractionController) OCRTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "OCR service status",
		"data": fiber.Map{
			"available": ec.Gemini != nil,
		},
		"error": nil,
	})
}
