package router

import (
	"github.com/YiChiaPeng/ryan-travel-agency/applications/controllers"
	"github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	search_repositories "github.com/YiChiaPeng/ryan-travel-agency/search/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitApplicationRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	applicationRepo repositories.ApplicationRepository,
	searchRepo search_repositories.SearchRepositoryInterface,
) {
	applicationController := &controllers.ApplicationController{
		ApplicationRepo: applicationRepo,
		SearchRepo:      searchRepo,
	}

	api := app.Group("/api/v2/applications", middleware.ProtectedRoute(appCtx))

	api.Post("/", applicationController.CreateApplication)
	api.Get("/", applicationController.ListApplications)
	api.Get("/:id", applicationController.GetApplication)
	api.Put("/:id", applicationController.UpdateApplication)
	api.Delete("/:id", applicationController.DeleteApplication)
	api.Post("/:id/resubmit", applicationController.ResubmitApplication)

	admin := app.Group("/api/v2/admin/applications", middleware.ProtectedRoute(appCtx), middleware.AdminRoute())

	admin.Get("/", applicationController.ListAllApplications)
	admin.Put("/:id/status", applicationController.UpdateApplicationStatus)
}
