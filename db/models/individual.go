package models

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	MaleGender   Gender = "male"
	FemaleGender Gender = "female"
)

// Individual holds a person's biographical record and scanned ID documents.
// The (ChineseLastName, ChineseFirstName) pair is the lookup key used by the
// application workflow; NationalID stays unique at the schema level.
type Individual struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ChineseLastName  string    `gorm:"not null;uniqueIndex:idx_individuals_chinese_name" json:"chinese_last_name"`
	ChineseFirstName string    `gorm:"not null;uniqueIndex:idx_individuals_chinese_name" json:"chinese_first_name"`
	EnglishLastName  string    `json:"english_last_name"`
	EnglishFirstName string    `json:"english_first_name"`
	NationalID       *string   `gorm:"uniqueIndex" json:"national_id"`
	Gender           *Gender   `gorm:"type:varchar(10)" json:"gender"`

	// Scanned document blobs, never serialized in API responses
	PassportInfoImage []byte `json:"-"`
	IDCardFrontImage  []byte `json:"-"`
	IDCardBackImage   []byte `json:"-"`

	Applications []Application `gorm:"foreignKey:IndividualID" json:"applications,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (i *Individual) FullChineseName() string {
	return i.ChineseLastName + i.ChineseFirstName
}

func (i *Individual) FullEnglishName() string {
	if i.EnglishLastName == "" && i.EnglishFirstName == "" {
		return ""
	}
	return i.EnglishFirstName + " " + i.EnglishLastName
}
