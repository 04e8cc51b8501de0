package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadController struct {
	Storage utils.FileStorage
}

// UploadFile stores a document on disk and returns its storage path.
func (uc *UploadController) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "A file is required.",
		})
	}

	if !utils.AllowedFile(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "File type is not allowed.",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		config.Logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Upload failed",
			"data":    nil,
			"error":   "Could not read the uploaded file.",
		})
	}
	defer file.Close()

	storedPath, err := uc.Storage.UploadFile(file, utils.SanitizeFileName(fileHeader.Filename))
	if err != nil {
		config.Logger.Error("Failed to store uploaded file",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Upload failed",
			"data":    nil,
			"error":   "Could not store the uploaded file.",
		})
	}

	config.Logger.Info("File uploaded",
		zap.String("filename", fileHeader.Filename),
		zap.String("path", storedPath),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"data": fiber.Map{
			"filename": fileHeader.Filename,
			"path":     storedPath,
			"size":     fileHeader.Size,
		},
		"error": nil,
	})
}
