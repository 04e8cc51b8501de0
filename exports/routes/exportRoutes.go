package router

import (
	application_repositories "github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/exports/controllers"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitExportRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	applicationRepo application_repositories.ApplicationRepository,
) {
	exportController := &controllers.ExportController{
		ApplicationRepo: applicationRepo,
	}

	api := app.Group("/api/export", middleware.ProtectedRoute(appCtx))

	api.Get("/:company", exportController.ExportCompanyApplications)
}
