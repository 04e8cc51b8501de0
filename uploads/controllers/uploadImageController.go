package controllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/YiChiaPeng/ryan-travel-agency/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadImage accepts a multipart image and echoes it back as a base64
// data URI for the client to embed in a later create/update request.
// Nothing is persisted here.
func (uc *UploadController) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "An image file is required.",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		config.Logger.Error("Failed to open uploaded image", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Upload failed",
			"data":    nil,
			"error":   "Could not read the uploaded file.",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		config.Logger.Error("Failed to read uploaded image", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Upload failed",
			"data":    nil,
			"error":   "Could not read the uploaded file.",
		})
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Only image files are accepted.",
		})
	}

	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)

	return c.JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"data": fiber.Map{
			"filename":     fileHeader.Filename,
			"content_type": contentType,
			"size":         len(data),
			"image_data":   dataURI,
		},
		"error": nil,
	})
}
