package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupControllerTest(t *testing.T) (repositories.ApplicationRepository, *gorm.DB) {
	t.Helper()
	config.Logger = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Individual{}, &models.Application{}))

	return repositories.NewApplicationRepository(db), db
}

func createOwnerWithApplication(t *testing.T, repo repositories.ApplicationRepository, db *gorm.DB) (*models.User, *models.Application) {
	t.Helper()
	owner := &models.User{
		ID:          uuid.New(),
		Username:    "acme",
		CompanyName: "Acme",
		Password:    "irrelevant-hash",
		Email:       "acme@example.com",
		Role:        models.UserRole,
	}
	require.NoError(t, db.Create(owner).Error)

	application, _, err := repo.CreateApplication(&models.Application{
		UserID:          owner.ID,
		ApplicationType: models.FirstTimeApplication,
		Urgency:         models.NormalApplication,
		CustomerName:    "Jane Doe",
	}, &models.Individual{ChineseLastName: "王", ChineseFirstName: "小明"})
	require.NoError(t, err)
	return owner, application
}

// appAs builds the route with the caller's verified token payload already
// in place, the way ProtectedRoute leaves it.
func appAs(controller *ApplicationController, payload *token.Payload) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", payload)
		return c.Next()
	})
	app.Get("/applications/:id", controller.GetApplication)
	return app
}

func getApplication(t *testing.T, app *fiber.App, id string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/applications/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestGetApplicationOwnerSeesOwnRow(t *testing.T) {
	repo, db := setupControllerTest(t)
	owner, application := createOwnerWithApplication(t, repo, db)
	controller := &ApplicationController{ApplicationRepo: repo}

	app := appAs(controller, &token.Payload{UserID: owner.ID, Role: models.UserRole})

	status, body := getApplication(t, app, application.ID.String())
	require.Equal(t, fiber.StatusOK, status)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	data := parsed["data"].(map[string]interface{})
	require.Equal(t, application.ID.String(), data["id"])
}

func TestGetApplicationForeignRowLooksNonexistent(t *testing.T) {
	repo, db := setupControllerTest(t)
	_, application := createOwnerWithApplication(t, repo, db)
	controller := &ApplicationController{ApplicationRepo: repo}

	app := appAs(controller, &token.Payload{UserID: uuid.New(), Role: models.UserRole})

	foreignStatus, foreignBody := getApplication(t, app, application.ID.String())
	missingStatus, missingBody := getApplication(t, app, uuid.New().String())

	require.Equal(t, fiber.StatusNotFound, foreignStatus)
	require.Equal(t, missingStatus, foreignStatus)
	require.JSONEq(t, missingBody, foreignBody)
}

func TestGetApplicationAdminSeesEveryRow(t *testing.T) {
	repo, db := setupControllerTest(t)
	_, application := createOwnerWithApplication(t, repo, db)
	controller := &ApplicationController{ApplicationRepo: repo}

	admin := &token.Payload{UserID: uuid.New(), Role: models.AdminRole, IsAdmin: true}
	app := appAs(controller, admin)

	status, _ := getApplication(t, app, application.ID.String())
	require.Equal(t, fiber.StatusOK, status)
}
