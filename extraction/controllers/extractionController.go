package controllers

import (
	"context"
	"io"
	"net/http"

	individual_services "github.com/YiChiaPeng/ryan-travel-agency/individuals/services"
	internal_services "github.com/YiChiaPeng/ryan-travel-agency/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ExtractionBackend is the slice of GeminiService the extraction
// endpoints depend on.
type ExtractionBackend interface {
	ProcessDocumentWithPrompt(ctx context.Context, fileBytes []byte, mimeType string, prompt string) (string, error)
	GenerateContentWithRetry(ctx context.Context, prompt string, retryCfg *internal_services.RetryConfig) (string, error)
}

type ExtractionController struct {
	Gemini ExtractionBackend
}

// imageFromRequest accepts either a multipart "file" field or a JSON body
// with base64 "image_data", and returns the raw bytes plus MIME type.
func imageFromRequest(c *fiber.Ctx) ([]byte, string, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", fiber.NewError(fiber.StatusInternalServerError, "could not read the uploaded file")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", fiber.NewError(fiber.StatusInternalServerError, "could not read the uploaded file")
		}
		return data, http.DetectContentType(data), nil
	}

	var body struct {
		ImageData string `json:"image_data"`
	}
	if err := c.BodyParser(&body); err != nil || body.ImageData == "" {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "an image file or image_data field is required")
	}

	data, err := individual_services.DecodeImageData(body.ImageData)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return data, http.DetectContentType(data), nil
}
