package router

import (
	"github.com/YiChiaPeng/ryan-travel-agency/extraction/controllers"
	internal_services "github.com/YiChiaPeng/ryan-travel-agency/internal/services"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitExtractionRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	gemini *internal_services.GeminiService,
) {
	extractionController := &controllers.ExtractionController{}
	// Assign only when configured: a typed nil pointer in the interface
	// field would defeat the controllers' availability checks.
	if gemini != nil {
		extractionController.Gemini = gemini
	}

	api := app.Group("/api", middleware.ProtectedRoute(appCtx))

	api.Post("/ocr/extract", extractionController.OCRExtract)
	api.Get("/ocr/test", extractionController.OCRTest)
	api.Post("/llm/extract-passport-info", extractionController.LLMExtractPassportInfo)
	api.Get("/llm/test", extractionController.LLMTest)
	api.Post("/extract-passport-complete", extractionController.ExtractPassportComplete)
}
