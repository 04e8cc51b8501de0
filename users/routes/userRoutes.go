package router

import (
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/users/controllers"
	"github.com/YiChiaPeng/ryan-travel-agency/users/repositories"

	"github.com/gofiber/fiber/v2"
)

func InitUserRoutes(
	app *fiber.App,
	appCtx *middleware.AppContext,
	userRepo repositories.UserRepository,
) {
	authController := &controllers.AuthController{
		UserRepo:    userRepo,
		PasetoMaker: appCtx.PasetoMaker,
		Ctx:         appCtx.Ctx,
		RedisClient: appCtx.RedisClient,
	}

	auth := app.Group("/auth")

	auth.Post("/register", authController.RegisterUser)
	auth.Post("/login", authController.LoginUser)
	auth.Post("/logout", authController.LogoutUser)
	auth.Post("/validate-token", authController.ValidateToken)
	auth.Post("/refresh-token", authController.RefreshToken)

	auth.Post("/change-password", middleware.ProtectedRoute(appCtx), authController.ChangePassword)
}
