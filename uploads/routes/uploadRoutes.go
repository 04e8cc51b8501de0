package router

import (
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/uploads/controllers"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"github.com/gofiber/fiber/v2"
)

func InitUploadRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	storage utils.FileStorage,
) {
	uploadController := &controllers.UploadController{
		Storage: storage,
	}

	app.Post("/api/v2/upload-image", middleware.ProtectedRoute(appCtx), uploadController.UploadImage)
	app.Post("/api/upload", middleware.ProtectedRoute(appCtx), uploadController.UploadFile)
}
