package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"

	"github.com/google/uuid"
)

var ErrExpired = errors.New("token has expired")

// AccessTokenDuration is how long an access token stays valid.
const AccessTokenDuration = 8 * time.Hour

type Payload struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Username  string      `json:"username"`
	Company   string      `json:"company"`
	Role      models.Role `json:"role"`
	IsAdmin   bool        `json:"is_admin"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiredAt time.Time   `json:"expired_at"`
}

func NewPayload(user *models.User, duration time.Duration) (*Payload, error) {
	if user == nil {
		return nil, errors.New("user cannot be nil")
	}

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	payload := &Payload{
		ID:        tokenID,
		UserID:    user.ID,
		Username:  user.Username,
		Company:   user.CompanyName,
		Role:      user.Role,
		IsAdmin:   user.IsAdmin(),
		IssuedAt:  issuedAt,
		ExpiredAt: expiredAt,
	}
	return payload, nil
}

func (payload *Payload) Valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpired
	}
	return nil
}

func (p *Payload) String() string {
	return fmt.Sprintf("ID: %s, Username: %s, Company: %s, IssuedAt: %s, ExpiredAt: %s", p.ID, p.Username, p.Company, p.IssuedAt, p.ExpiredAt)
}
