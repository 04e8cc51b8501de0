package router

import (
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/search/controllers"
	"github.com/YiChiaPeng/ryan-travel-agency/search/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	searchRepo repositories.SearchRepositoryInterface,
) {
	searchController := controllers.NewSearchController(searchRepo)

	// Search spans every account, so the whole group is admin-only.
	api := app.Group("/api/v2/admin/search", middleware.ProtectedRoute(appCtx), middleware.AdminRoute())

	api.Get("/individuals", searchController.SearchIndividualsController)
	api.Get("/applications", searchController.SearchApplicationsController)
}
