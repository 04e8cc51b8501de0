package main

import (
	"context"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/token"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	// Repositories
	applications_repositories "github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	individuals_repositories "github.com/YiChiaPeng/ryan-travel-agency/individuals/repositories"
	users_repositories "github.com/YiChiaPeng/ryan-travel-agency/users/repositories"

	// Routes
	application_routes "github.com/YiChiaPeng/ryan-travel-agency/applications/routes"
	export_routes "github.com/YiChiaPeng/ryan-travel-agency/exports/routes"
	extraction_routes "github.com/YiChiaPeng/ryan-travel-agency/extraction/routes"
	individual_routes "github.com/YiChiaPeng/ryan-travel-agency/individuals/routes"
	upload_routes "github.com/YiChiaPeng/ryan-travel-agency/uploads/routes"
	user_routes "github.com/YiChiaPeng/ryan-travel-agency/users/routes"

	// Search
	search_repositories "github.com/YiChiaPeng/ryan-travel-agency/search/repositories"
	search_routes "github.com/YiChiaPeng/ryan-travel-agency/search/routes"
	search_services "github.com/YiChiaPeng/ryan-travel-agency/search/services"

	internal_services "github.com/YiChiaPeng/ryan-travel-agency/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file loaded, relying on process environment", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // document images arrive as base64 payloads
	})

	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data" // Default for local development
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	// Initialize the mailer
	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Warn("Mailer not configured; status notifications will fail")
	}

	// Extraction is optional: without an API key the endpoints report
	// the service as unavailable instead of crashing at startup.
	var geminiService *internal_services.GeminiService
	if apiKey := config.GetGeminiAPIKey(); apiKey != "" {
		geminiService, err = internal_services.NewGeminiService(apiKey)
		if err != nil {
			config.Logger.Fatal("Failed to create extraction service", zap.Error(err))
		}
	} else {
		config.Logger.Warn("GEMINI_API_KEY not set; extraction endpoints disabled")
	}

	// Serve static files
	app.Static("/public", "./public")

	// Repositories
	indexingService := search_services.NewIndexingService(config.Logger, indexPath)
	_, searchRepo := search_repositories.NewSearchRepository(indexingService)
	userRepo := users_repositories.NewUserRepository(db)
	individualRepo := individuals_repositories.NewIndividualRepository(db)
	applicationRepo := applications_repositories.NewApplicationRepository(db)

	fileStorage := utils.NewLocalFileStorage("./uploads")

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Rebuild the search indexes from the database. Index writes during
	// request handling are fire-and-forget, so the indexes can drift
	// behind the source of truth across restarts.
	go func() {
		individuals, err := individualRepo.GetAllIndividuals()
		if err != nil {
			config.Logger.Error("Startup reindex: could not load individuals", zap.Error(err))
		} else if err := searchRepo.IndexExistingIndividuals(individuals); err != nil {
			config.Logger.Error("Startup reindex of individuals failed", zap.Error(err))
		}

		applications, err := applicationRepo.GetAllApplications()
		if err != nil {
			config.Logger.Error("Startup reindex: could not load applications", zap.Error(err))
		} else if err := searchRepo.IndexExistingApplications(applications); err != nil {
			config.Logger.Error("Startup reindex of applications failed", zap.Error(err))
		}
	}()

	// Flush and close the search indexes when the server stops.
	app.Hooks().OnShutdown(func() error {
		return searchRepo.DeleteAllIndices()
	})

	// Routes
	user_routes.InitUserRoutes(app, appCtx, userRepo)
	individual_routes.InitIndividualRoutes(app, appCtx, individualRepo)
	application_routes.InitApplicationRoutes(app, appCtx, applicationRepo, searchRepo)
	export_routes.InitExportRoutes(app, appCtx, applicationRepo)
	upload_routes.InitUploadRoutes(app, appCtx, fileStorage)
	extraction_routes.InitExtractionRoutes(app, appCtx, geminiService)
	search_routes.InitSearchRoutes(app, appCtx, searchRepo)

	// Background cleanup of generated export files
	go utils.RunScheduledCleanup()

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
