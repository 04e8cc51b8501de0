package repositories

import (
	"testing"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"

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

func strPtr(s string) *string { return &s }

func TestCreateAndGetIndividual(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	created, err := repo.CreateIndividual(&models.Individual{
		ChineseLastName:  "王",
		ChineseFirstName: "小明",
		EnglishLastName:  "Wang",
		EnglishFirstName: "Xiaoming",
		NationalID:       strPtr("A123456789"),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.GetIndividualByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "王小明", found.FullChineseName())
	assert.Equal(t, "Xiaoming Wang", found.FullEnglishName())
}

func TestUpsertByNameIsIdempotent(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	payload := func() *models.Individual {
		return &models.Individual{
			ChineseLastName:  "王",
			ChineseFirstName: "小明",
			EnglishLastName:  "Wang",
			EnglishFirstName: "Xiaoming",
		}
	}

	first, action, err := repo.CreateOrUpdateByName(payload())
	require.NoError(t, err)
	assert.Equal(t, UpsertCreated, action)

	second, action, err := repo.CreateOrUpdateByName(payload())
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, action)
	assert.Equal(t, first.ID, second.ID, "same name pair must resolve to the same row")

	var count int64
	db := setupCount(t, repo)
	require.NoError(t, db.Model(&models.Individual{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// setupCount digs the gorm handle back out for row counting.
func setupCount(t *testing.T, repo IndividualRepository) *gorm.DB {
	t.Helper()
	impl, ok := repo.(*individualRepository)
	require.True(t, ok)
	return impl.db
}

func TestUpsertPreservesUnsuppliedFields(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	_, _, err := repo.CreateOrUpdateByName(&models.Individual{
		ChineseLastName:  "王",
		ChineseFirstName: "小明",
		EnglishLastName:  "Wang",
		NationalID:       strPtr("A123456789"),
	})
	require.NoError(t, err)

	// Second call supplies only a gender; earlier fields must survive.
	gender := models.MaleGender
	updated, action, err := repo.CreateOrUpdateByName(&models.Individual{
		ChineseLastName:  "王",
		ChineseFirstName: "小明",
		Gender:           &gender,
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, action)
	assert.Equal(t, "Wang", updated.EnglishLastName)
	require.NotNil(t, updated.NationalID)
	assert.Equal(t, "A123456789", *updated.NationalID)
	require.NotNil(t, updated.Gender)
	assert.Equal(t, models.MaleGender, *updated.Gender)
}

func TestUpdateIndividualPartial(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	created, err := repo.CreateIndividual(&models.Individual{
		ChineseLastName:  "李",
		ChineseFirstName: "四",
		EnglishLastName:  "Li",
	})
	require.NoError(t, err)

	updated, err := repo.UpdateIndividual(created.ID, map[string]interface{}{
		"english_first_name": "Si",
	})
	require.NoError(t, err)
	assert.Equal(t, "Li", updated.EnglishLastName)
	assert.Equal(t, "Si", updated.EnglishFirstName)
}

func TestUpdateIndividualNotFound(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	_, err := repo.UpdateIndividual(uuid.New(), map[string]interface{}{
		"english_first_name": "Si",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetIndividualImage(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	blob := []byte{0xff, 0xd8, 0xff, 0xe0}
	created, err := repo.CreateIndividual(&models.Individual{
		ChineseLastName:  "王",
		ChineseFirstName: "小明",
		IDCardFrontImage: blob,
	})
	require.NoError(t, err)

	data, err := repo.GetIndividualImage(created.ID, "id_card_front_image")
	require.NoError(t, err)
	assert.Equal(t, blob, data)

	// Unstored image column reads back empty
	data, err = repo.GetIndividualImage(created.ID, "passport_info_image")
	require.NoError(t, err)
	assert.Empty(t, data)

	// Unknown column is rejected
	_, err = repo.GetIndividualImage(created.ID, "password")
	assert.Error(t, err)
}

func TestGetAllIndividualsOmitsImageBlobs(t *testing.T) {
	repo := NewIndividualRepository(setupTestDB(t))

	_, err := repo.CreateIndividual(&models.Individual{
		ChineseLastName:   "王",
		ChineseFirstName:  "小明",
		PassportInfoImage: []byte{0x01, 0x02, 0x03},
	})
	require.NoError(t, err)

	_, err = repo.CreateIndividual(&models.Individual{
		ChineseLastName:  "陳",
		ChineseFirstName: "大文",
	})
	require.NoError(t, err)

	all, err := repo.GetAllIndividuals()
	require.NoError(t, err)
	require.Len(t, all, 2)

	names := map[string]bool{}
	for _, individual := range all {
		names[individual.FullChineseName()] = true
		assert.Empty(t, individual.PassportInfoImage)
		assert.Empty(t, individual.IDCardFrontImage)
	}
	assert.True(t, names["王小明"])
	assert.True(t, names["陳大文"])
}
