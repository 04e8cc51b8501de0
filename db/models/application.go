package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ApplicationType string

const (
	FirstTimeApplication    ApplicationType = "first_time"
	RenewalApplication      ApplicationType = "renewal"
	LostDocumentApplication ApplicationType = "lost_document"
)

type Urgency string

const (
	UrgentApplication Urgency = "urgent"
	NormalApplication Urgency = "normal"
)

type ApplicationStatus string

const (
	DraftStatus             ApplicationStatus = "draft"
	PendingReviewStatus     ApplicationStatus = "pending_review"
	NeedsResubmissionStatus ApplicationStatus = "needs_resubmission"
	SubmittedStatus         ApplicationStatus = "submitted"
	CompletedStatus         ApplicationStatus = "completed"
)

type ApplicationSubstatus string

const (
	FailedSubstatus        ApplicationSubstatus = "failed"
	SuccessSubstatus       ApplicationSubstatus = "success"
	AdditionalFeeSubstatus ApplicationSubstatus = "additional_fee_required"
)

// Application tracks a document request for one Individual, owned by one User.
// Status values look like a state machine but no transition graph is enforced;
// any writer with permission may set any status.
type Application struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	IndividualID uuid.UUID `gorm:"type:uuid;not null;index" json:"individual_id"`

	ApplicationType ApplicationType       `gorm:"type:varchar(20);not null" json:"application_type"`
	Urgency         Urgency               `gorm:"type:varchar(10);not null" json:"urgency"`
	ApplicationDate *time.Time            `json:"application_date"`
	CustomerName    string                `json:"customer_name"`
	Status          ApplicationStatus     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Substatus       *ApplicationSubstatus `gorm:"type:varchar(30)" json:"substatus"`
	Reason          *string               `gorm:"type:text" json:"reason"`

	// Append-only resubmission history: [{"timestamp": RFC3339, "note": ...}, ...]
	Resubmissions datatypes.JSON `json:"resubmissions,omitempty"`

	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Individual Individual `gorm:"foreignKey:IndividualID" json:"individual,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
