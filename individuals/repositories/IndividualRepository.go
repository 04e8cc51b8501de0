package repositories

import (
	"errors"
	"fmt"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpsertAction reports whether CreateOrUpdateByName inserted a new record
// or refreshed an existing one.
type UpsertAction string

const (
	UpsertCreated UpsertAction = "created"
	UpsertUpdated UpsertAction = "updated"
)

type IndividualRepository interface {
	CreateIndividual(individual *models.Individual) (*models.Individual, error)
	GetIndividualByID(id uuid.UUID) (*models.Individual, error)
	GetIndividualByName(chineseLastName, chineseFirstName string) (*models.Individual, error)
	UpdateIndividual(id uuid.UUID, updates map[string]interface{}) (*models.Individual, error)
	CreateOrUpdateByName(individual *models.Individual) (*models.Individual, UpsertAction, error)
	GetIndividualImage(id uuid.UUID, column string) ([]byte, error)
	GetAllIndividuals() ([]models.Individual, error)
}

type individualRepository struct {
	db *gorm.DB
}

func NewIndividualRepository(db *gorm.DB) IndividualRepository {
	return &individualRepository{db: db}
}

func (r *individualRepository) CreateIndividual(individual *models.Individual) (*models.Individual, error) {
	if individual.ID == uuid.Nil {
		individual.ID = uuid.New()
	}
	if err := r.db.Create(individual).Error; err != nil {
		return nil, fmt.Errorf("failed to create individual: %w", err)
	}
	return individual, nil
}

// GetAllIndividuals feeds the startup search reindex. Image blobs are
// left out: they are large and never indexed.
func (r *individualRepository) GetAllIndividuals() ([]models.Individual, error) {
	var individuals []models.Individual
	err := r.db.
		Select("id", "chinese_last_name", "chinese_first_name", "english_last_name", "english_first_name", "national_id", "gender").
		Find(&individuals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list individuals: %w", err)
	}
	return individuals, nil
}

func (r *individualRepository) GetIndividualByID(id uuid.UUID) (*models.Individual, error) {
	var individual models.Individual
	err := r.db.First(&individual, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &individual, nil
}

func (r *individualRepository) GetIndividualByName(chineseLastName, chineseFirstName string) (*models.Individual, error) {
	var individual models.Individual
	err := r.db.
		Where("chinese_last_name = ? AND chinese_first_name = ?", chineseLastName, chineseFirstName).
		First(&individual).Error
	if err != nil {
		return nil, err
	}
	return &individual, nil
}

// UpdateIndividual applies a partial update. Only the columns present in
// updates are touched, so omitted fields keep their stored values.
func (r *individualRepository) UpdateIndividual(id uuid.UUID, updates map[string]interface{}) (*models.Individual, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Individual{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update individual: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetIndividualByID(id)
}

// CreateOrUpdateByName upserts on the Chinese name pair. An existing
// record is refreshed field by field: nil values in the incoming
// individual leave the stored values alone.
func (r *individualRepository) CreateOrUpdateByName(individual *models.Individual) (*models.Individual, UpsertAction, error) {
	var result *models.Individual
	action := UpsertCreated

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Individual
		err := tx.
			Where("chinese_last_name = ? AND chinese_first_name = ?", individual.ChineseLastName, individual.ChineseFirstName).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if individual.ID == uuid.Nil {
				individual.ID = uuid.New()
			}
			if err := tx.Create(individual).Error; err != nil {
				return fmt.Errorf("failed to create individual: %w", err)
			}
			result = individual
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up individual by name: %w", err)
		}

		action = UpsertUpdated
		updates := map[string]interface{}{}
		if individual.EnglishLastName != "" {
			updates["english_last_name"] = individual.EnglishLastName
		}
		if individual.EnglishFirstName != "" {
			updates["english_first_name"] = individual.EnglishFirstName
		}
		if individual.NationalID != nil {
			updates["national_id"] = *individual.NationalID
		}
		if individual.Gender != nil {
			updates["gender"] = *individual.Gender
		}
		if individual.PassportInfoImage != nil {
			updates["passport_info_image"] = individual.PassportInfoImage
		}
		if individual.IDCardFrontImage != nil {
			updates["id_card_front_image"] = individual.IDCardFrontImage
		}
		if individual.IDCardBackImage != nil {
			updates["id_card_back_image"] = individual.IDCardBackImage
		}

		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update individual: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, action, err
	}

	if action == UpsertUpdated {
		reloaded, err := r.GetIndividualByName(individual.ChineseLastName, individual.ChineseFirstName)
		if err != nil {
			return nil, action, err
		}
		result = reloaded
	}

	return result, action, nil
}

// GetIndividualImage fetches one image column without loading the rest of
// the blobs into memory.
func (r *individualRepository) GetIndividualImage(id uuid.UUID, column string) ([]byte, error) {
	switch column {
	case "passport_info_image", "id_card_front_image", "id_card_back_image":
	default:
		return nil, fmt.Errorf("unknown image column: %s", column)
	}

	var individual models.Individual
	err := r.db.Select("id", column).First(&individual, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	switch column {
	case "passport_info_image":
		return individual.PassportInfoImage, nil
	case "id_card_front_image":
		return individual.IDCardFrontImage, nil
	default:
		return individual.IDCardBackImage, nil
	}
}
