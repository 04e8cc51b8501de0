package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	UserRole     Role = "user"
	ReviewerRole Role = "reviewer"
	AdminRole    Role = "admin"
	SudoRole     Role = "sudo"
)

// IsAdmin derives the admin flag from the role. It is never stored.
func (r Role) IsAdmin() bool {
	return r == AdminRole || r == SudoRole
}

// User represents a B2B client account with role-based access
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyName string    `gorm:"unique;not null" json:"company_name"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Password    string    `json:"-"` // Never include in JSON responses
	Email       string    `json:"email"`
	Role        Role      `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	Applications []Application `gorm:"foreignKey:UserID" json:"applications,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsAdmin reports whether the user's role grants admin access.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
