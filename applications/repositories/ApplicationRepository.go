package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/utils/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IndividualAction reports whether the individual referenced by a new
// application was inserted or refreshed during the same transaction.
type IndividualAction string

const (
	IndividualCreated IndividualAction = "created"
	IndividualUpdated IndividualAction = "updated"
)

// ListFilters narrows list queries. Nil/empty values mean "no filter".
type ListFilters struct {
	Status         *models.ApplicationStatus
	IndividualName string
	CompanyName    string
}

// ResubmissionEntry is one element of the resubmission history stored on
// the application as a JSON array.
type ResubmissionEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

type ApplicationRepository interface {
	CreateApplication(application *models.Application, individual *models.Individual) (*models.Application, IndividualAction, error)
	GetApplicationByID(id uuid.UUID, ownerID *uuid.UUID) (*models.Application, error)
	ListByUser(userID uuid.UUID, filters ListFilters) ([]models.Application, error)
	ListAll(filters ListFilters, params pagination.PaginationParams) ([]models.Application, int64, error)
	ListByCompany(companyName string) ([]models.Application, error)
	GetAllApplications() ([]models.Application, error)
	UpdateApplication(id uuid.UUID, ownerID *uuid.UUID, updates map[string]interface{}, individualUpdates map[string]interface{}) (*models.Application, error)
	DeleteApplication(id uuid.UUID, ownerID *uuid.UUID) error
	ResubmitApplication(id uuid.UUID, ownerID *uuid.UUID, note string) (*models.Application, error)
	UpdateApplicationStatus(id uuid.UUID, status models.ApplicationStatus, substatus *models.ApplicationSubstatus, reason *string) (*models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// ownedScope restricts a query to rows owned by ownerID. A nil ownerID is
// the admin path: no restriction. A miss under the scope is reported as
// gorm.ErrRecordNotFound, indistinguishable from true absence.
func ownedScope(ownerID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID != nil {
			return db.Where("applications.user_id = ?", *ownerID)
		}
		return db
	}
}

// CreateApplication resolves the referenced individual by its Chinese name
// pair (inserting it when absent) and creates the application row in the
// same transaction. Status defaults to draft when unset.
func (r *applicationRepository) CreateApplication(application *models.Application, individual *models.Individual) (*models.Application, IndividualAction, error) {
	if individual == nil || individual.ChineseLastName == "" || individual.ChineseFirstName == "" {
		return nil, "", fmt.Errorf("individual chinese_last_name and chinese_first_name are required")
	}

	action := IndividualCreated

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Individual
		err := tx.
			Where("chinese_last_name = ? AND chinese_first_name = ?", individual.ChineseLastName, individual.ChineseFirstName).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if individual.ID == uuid.Nil {
				individual.ID = uuid.New()
			}
			if err := tx.Create(individual).Error; err != nil {
				return fmt.Errorf("failed to create individual: %w", err)
			}
			application.IndividualID = individual.ID
		case err != nil:
			return fmt.Errorf("failed to look up individual by name: %w", err)
		default:
			action = IndividualUpdated
			updates := individualUpdateMap(individual)
			if len(updates) > 0 {
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return fmt.Errorf("failed to update individual: %w", err)
				}
			}
			application.IndividualID = existing.ID
			*individual = existing
		}

		if application.ID == uuid.Nil {
			application.ID = uuid.New()
		}
		if application.Status == "" {
			application.Status = models.DraftStatus
		}

		if err := tx.Create(application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, action, err
	}

	return application, action, nil
}

func individualUpdateMap(individual *models.Individual) map[string]interface{} {
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
	return updates
}

func (r *applicationRepository) GetApplicationByID(id uuid.UUID, ownerID *uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Scopes(ownedScope(ownerID)).
		Preload("User").
		Preload("Individual").
		First(&application, "applications.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByUser(userID uuid.UUID, filters ListFilters) ([]models.Application, error) {
	query := r.db.
		Where("applications.user_id = ?", userID).
		Preload("Individual").
		Order("applications.created_at DESC")

	if filters.Status != nil {
		query = query.Where("applications.status = ?", *filters.Status)
	}
	if filters.IndividualName != "" {
		query = query.
			Joins("JOIN individuals ON individuals.id = applications.individual_id").
			Where("individuals.chinese_last_name || individuals.chinese_first_name = ?", filters.IndividualName)
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// ListAll is the admin view: every company's applications, paginated
// newest-created first.
func (r *applicationRepository) ListAll(filters ListFilters, params pagination.PaginationParams) ([]models.Application, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if filters.Status != nil {
			db = db.Where("applications.status = ?", *filters.Status)
		}
		if filters.CompanyName != "" {
			db = db.
				Joins("JOIN users ON users.id = applications.user_id").
				Where("users.company_name = ?", filters.CompanyName)
		}
		return db
	}

	var total int64
	if err := filtered(r.db.Model(&models.Application{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	var applications []models.Application
	err := filtered(r.db.Model(&models.Application{})).
		Preload("User").
		Preload("Individual").
		Order("applications.created_at DESC, applications.id").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&applications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	return applications, total, nil
}

func (r *applicationRepository) ListByCompany(companyName string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Joins("JOIN users ON users.id = applications.user_id").
		Where("users.company_name = ?", companyName).
		Preload("User").
		Preload("Individual").
		Order("applications.created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for company: %w", err)
	}
	return applications, nil
}

// GetAllApplications feeds the startup search reindex with owner and
// individual summaries preloaded.
func (r *applicationRepository) GetAllApplications() ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("User").
		Preload("Individual").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// UpdateApplication applies a partial update, cascading nested individual
// changes inside the same transaction. A failure on either side rolls
// back both.
func (r *applicationRepository) UpdateApplication(id uuid.UUID, ownerID *uuid.UUID, updates map[string]interface{}, individualUpdates map[string]interface{}) (*models.Application, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var application models.Application
		err := tx.Scopes(ownedScope(ownerID)).First(&application, "applications.id = ?", id).Error
		if err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&application).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update application: %w", err)
			}
		}

		if len(individualUpdates) > 0 {
			result := tx.Model(&models.Individual{}).
				Where("id = ?", application.IndividualID).
				Updates(individualUpdates)
			if result.Error != nil {
				return fmt.Errorf("failed to update individual: %w", result.Error)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetApplicationByID(id, ownerID)
}

// DeleteApplication hard-deletes the row. The referenced individual is
// never cascade-deleted.
func (r *applicationRepository) DeleteApplication(id uuid.UUID, ownerID *uuid.UUID) error {
	result := r.db.Scopes(ownedScope(ownerID)).Delete(&models.Application{}, "applications.id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ResubmitApplication appends a history entry and moves the application
// back to pending review.
func (r *applicationRepository) ResubmitApplication(id uuid.UUID, ownerID *uuid.UUID, note string) (*models.Application, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var application models.Application
		err := tx.Scopes(ownedScope(ownerID)).First(&application, "applications.id = ?", id).Error
		if err != nil {
			return err
		}

		var history []ResubmissionEntry
		if len(application.Resubmissions) > 0 {
			if err := json.Unmarshal(application.Resubmissions, &history); err != nil {
				return fmt.Errorf("failed to parse resubmission history: %w", err)
			}
		}
		history = append(history, ResubmissionEntry{Timestamp: time.Now().UTC(), Note: note})

		raw, err := json.Marshal(history)
		if err != nil {
			return fmt.Errorf("failed to encode resubmission history: %w", err)
		}

		return tx.Model(&application).Updates(map[string]interface{}{
			"resubmissions": raw,
			"status":        models.PendingReviewStatus,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetApplicationByID(id, ownerID)
}

func (r *applicationRepository) UpdateApplicationStatus(id uuid.UUID, status models.ApplicationStatus, substatus *models.ApplicationSubstatus, reason *string) (*models.Application, error) {
	updates := map[string]interface{}{"status": status}
	if substatus != nil {
		updates["substatus"] = *substatus
	}
	if reason != nil {
		updates["reason"] = *reason
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update application status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetApplicationByID(id, nil)
}
