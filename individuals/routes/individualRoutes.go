package router

import (
	"github.com/YiChiaPeng/ryan-travel-agency/individuals/controllers"
	"github.com/YiChiaPeng/ryan-travel-agency/individuals/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitIndividualRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	individualRepo repositories.IndividualRepository,
) {
	individualController := &controllers.IndividualController{
		IndividualRepo: individualRepo,
	}

	api := app.Group("/api/v2/individuals", middleware.ProtectedRoute(appCtx))

	api.Post("/", individualController.CreateIndividual)
	api.Get("/:id", individualController.GetIndividual)
	api.Put("/:id", individualController.UpdateIndividual)
	api.Get("/:id/images/:type", individualController.GetIndividualImage)
}
