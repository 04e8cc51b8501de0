package repositories

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/utils/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Individual{}, &models.Application{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, company string) *models.User {
	t.Helper()
	user := &models.User{
		ID:          uuid.New(),
		Username:    username,
		CompanyName: company,
		Password:    "irrelevant-hash",
		Email:       username + "@example.com",
		Role:        models.UserRole,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func testIndividual(last, first string) *models.Individual {
	return &models.Individual{
		ChineseLastName:  last,
		ChineseFirstName: first,
		EnglishLastName:  "Wang",
		EnglishFirstName: "Xiaoming",
	}
}

func createTestApplication(t *testing.T, repo ApplicationRepository, userID uuid.UUID, last, first string) *models.Application {
	t.Helper()
	application := &models.Application{
		UserID:          userID,
		ApplicationType: models.FirstTimeApplication,
		Urgency:         models.UrgentApplication,
		CustomerName:    "Jane Doe",
	}
	created, _, err := repo.CreateApplication(application, testIndividual(last, first))
	require.NoError(t, err)
	return created
}

func TestCreateApplicationDefaultsToDraft(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	user := createTestUser(t, db, "acme", "Acme")

	created, action, err := repo.CreateApplication(&models.Application{
		UserID:          user.ID,
		ApplicationType: models.FirstTimeApplication,
		Urgency:         models.UrgentApplication,
		CustomerName:    "Jane Doe",
	}, testIndividual("王", "小明"))
	require.NoError(t, err)
	assert.Equal(t, IndividualCreated, action)
	assert.Equal(t, models.DraftStatus, created.Status)
	assert.NotEqual(t, uuid.Nil, created.IndividualID)

	// Unrestricted read returns the same fields back
	found, err := repo.GetApplicationByID(created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, models.FirstTimeApplication, found.ApplicationType)
	assert.Equal(t, models.UrgentApplication, found.Urgency)
	assert.Equal(t, "Jane Doe", found.CustomerName)
	assert.Equal(t, models.DraftStatus, found.Status)
	assert.Equal(t, "王小明", found.Individual.FullChineseName())
	assert.Equal(t, "Acme", found.User.CompanyName)
}

func TestCreateApplicationReusesIndividualByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	user := createTestUser(t, db, "acme", "Acme")

	first := createTestApplication(t, repo, user.ID, "王", "小明")

	second, action, err := repo.CreateApplication(&models.Application{
		UserID:          user.ID,
		ApplicationType: models.RenewalApplication,
		Urgency:         models.NormalApplication,
	}, testIndividual("王", "小明"))
	require.NoError(t, err)
	assert.Equal(t, IndividualUpdated, action)
	assert.Equal(t, first.IndividualID, second.IndividualID)

	var count int64
	require.NoError(t, db.Model(&models.Individual{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateApplicationRequiresChineseName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	user := createTestUser(t, db, "acme", "Acme")

	_, _, err := repo.CreateApplication(&models.Application{UserID: user.ID}, &models.Individual{
		ChineseLastName: "王",
	})
	assert.Error(t, err)

	_, _, err = repo.CreateApplication(&models.Application{UserID: user.ID}, nil)
	assert.Error(t, err)
}

func TestOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	owner := createTestUser(t, db, "acme", "Acme")
	other := createTestUser(t, db, "globex", "Globex")

	application := createTestApplication(t, repo, owner.ID, "王", "小明")

	// Owner sees it
	_, err := repo.GetApplicationByID(application.ID, &owner.ID)
	require.NoError(t, err)

	// Another user gets the same error as for a nonexistent id
	_, errForeign := repo.GetApplicationByID(application.ID, &other.ID)
	_, errMissing := repo.GetApplicationByID(uuid.New(), &other.ID)
	assert.ErrorIs(t, errForeign, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, errMissing, gorm.ErrRecordNotFound)
	assert.Equal(t, errMissing.Error(), errForeign.Error(), "foreign rows must be indistinguishable from missing rows")

	// Admin path (nil owner) is unrestricted
	_, err = repo.GetApplicationByID(application.ID, nil)
	require.NoError(t, err)
}

func TestListByUserNeverLeaksOtherOwners(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	acme := createTestUser(t, db, "acme", "Acme")
	globex := createTestUser(t, db, "globex", "Globex")

	createTestApplication(t, repo, acme.ID, "王", "小明")
	createTestApplication(t, repo, acme.ID, "李", "四")
	createTestApplication(t, repo, globex.ID, "陳", "大文")

	listed, err := repo.ListByUser(acme.ID, ListFilters{})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, application := range listed {
		assert.Equal(t, acme.ID, application.UserID)
	}
}

func TestListByUserStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	user := createTestUser(t, db, "acme", "Acme")

	application := createTestApplication(t, repo, user.ID, "王", "小明")
	createTestApplication(t, repo, user.ID, "李", "四")

	_, err := repo.UpdateApplicationStatus(application.ID, models.CompletedStatus, nil, nil)
	require.NoError(t, err)

	completed := models.CompletedStatus
	listed, err := repo.ListByUser(user.ID, ListFilters{Status: &completed})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, application.ID, listed[0].ID)
}

func TestListAllPaginationInvariant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	user := createTestUser(t, db, "acme", "Acme")

	const totalApplications = 7
	for i := 0; i < totalApplications; i++ {
		createTestApplication(t, repo, user.ID, "王", fmt.Sprintf("員%d", i))
	}

	limit := 3
	seen := map[uuid.UUID]bool{}
	var total int64

	for page := 1; ; page++ {
		items, t2, err := repo.ListAll(ListFilters{}, pagination.PaginationParams{Page: page, PageSize: limit})
		require.NoError(t, err)
		total = t2
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			assert.False(t, seen[item.ID], "application %s returned twice", item.ID)
			seen[item.ID] = true
		}
		if page > totalApplications {
			t.Fatal("pagination did not terminate")
		}
	}

	assert.Equal(t, int64(totalApplications), total)
	assert.Len(t, seen, totalApplications, "sum of items across pages must equal the total")
	assert.Equal(t, 3, pagination.TotalPages(total, limit))
}

func TestAdminStatusChangeVisibleToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	owner := createTestUser(t, db, "acme", "Acme")

	application := createTestApplication(t, repo, owner.ID, "王", "小明")

	substatus := models.SuccessSubstatus
	reason := "all documents verified"
	updated, err := repo.UpdateApplicationStatus(application.ID, models.CompletedStatus, &substatus, &reason)
	require.NoError(t, err)
	assert.Equal(t, models.CompletedStatus, updated.Status)

	// The owner-scoped read reflects the admin's change
	found, err := repo.GetApplicationByID(application.ID, &owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CompletedStatus, found.Status)
	require.NotNil(t, found.Substatus)
	assert.Equal(t, models.SuccessSubstatus, *found.Substatus)
	require.NotNil(t, found.Reason)
	assert.Equal(t, "all documents verified", *found.Reason)
}

func TestUpdateApplicationPartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	owner := createTestUser(t, db, "acme", "Acme")

	application := createTestApplication(t, repo, owner.ID, "王", "小明")

	updated, err := repo.UpdateApplication(application.ID, &owner.ID,
		map[string]interface{}{"customer_name": "John Roe"},
		map[string]interface{}{"english_first_name": "Ming"},
	)
	require.NoError(t, err)
	assert.Equal(t, "John Roe", updated.CustomerName)
	assert.Equal(t, models.FirstTimeApplication, updated.ApplicationType, "untouched fields survive")
	assert.Equal(t, "Ming", updated.Individual.EnglishFirstName)
}

func TestUpdateApplicationScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	owner := createTestUser(t, db, "acme", "Acme")
	other := createTestUser(t, db, "globex", "Globex")

	application := createTestApplication(t, repo, owner.ID, "王", "小明")

	_, err := repo.UpdateApplication(application.ID, &other.ID,
		map[string]interface{}{"customer_name": "Hijacked"}, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Original row untouched
	found, err := repo.GetApplicationByID(application.ID, &owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", found.CustomerName)
}

func TestDeleteApplicationScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	owner := createTestUser(t, db, "acme", "Acme")
	other := createTestUser(t, db, "globex", "Globex")

	application := createTestApplication(t, repo, owner.ID, "王", "小明")

	assert.ErrorIs(t, repo.DeleteApplication(application.ID, &other.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeleteApplication(application.ID, &owner.ID))

	_, err := repo.GetApplicationByID(application.ID, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The referenced individual is never cascade-deleted
	var count int64
	require.NoError(t, db.Model(&models.Individual{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResubmitApplication(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	owner := createTestUser(t, db, "acme", "Acme")

	application := createTestApplication(t, repo, owner.ID, "王", "小明")

	_, err := repo.UpdateApplicationStatus(application.ID, models.NeedsResubmissionStatus, nil, nil)
	require.NoError(t, err)

	resubmitted, err := repo.ResubmitApplication(application.ID, &owner.ID, "uploaded a sharper passport scan")
	require.NoError(t, err)
	assert.Equal(t, models.PendingReviewStatus, resubmitted.Status)

	var history []ResubmissionEntry
	require.NoError(t, json.Unmarshal(resubmitted.Resubmissions, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "uploaded a sharper passport scan", history[0].Note)

	// A second resubmission appends rather than replaces
	resubmitted, err = repo.ResubmitApplication(application.ID, &owner.ID, "added the back side")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(resubmitted.Resubmissions, &history))
	require.Len(t, history, 2)
}

func TestGetAllApplicationsPreloadsSummaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	user := createTestUser(t, db, "acme", "Acme")

	createTestApplication(t, repo, user.ID, "王", "小明")
	createTestApplication(t, repo, user.ID, "陳", "大文")

	all, err := repo.GetAllApplications()
	require.NoError(t, err)
	require.Len(t, all, 2)

	for _, application := range all {
		assert.Equal(t, "Acme", application.User.CompanyName)
		assert.NotEqual(t, uuid.Nil, application.Individual.ID)
		assert.NotEmpty(t, application.Individual.FullChineseName())
	}
}
