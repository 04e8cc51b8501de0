package token

import (
	"time"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
)

// Maker is the contract for anything that can create and verify tokens.
// Allows swapping the token implementation without touching the handlers.
type Maker interface {
	CreateToken(user *models.User, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
