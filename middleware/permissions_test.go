package middleware

import (
	"testing"

	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func payloadFor(userID uuid.UUID, company string, role models.Role) *token.Payload {
	return &token.Payload{
		UserID:  userID,
		Company: company,
		Role:    role,
		IsAdmin: role.IsAdmin(),
	}
}

func TestVerifyUserPermission(t *testing.T) {
	selfID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name       string
		payload    *token.Payload
		target     uuid.UUID
		allowAdmin bool
		want       bool
	}{
		{"self always allowed", payloadFor(selfID, "Acme", models.UserRole), selfID, false, true},
		{"self allowed with admin override on", payloadFor(selfID, "Acme", models.UserRole), selfID, true, true},
		{"other user denied", payloadFor(selfID, "Acme", models.UserRole), otherID, false, false},
		{"non-admin denied even with override", payloadFor(selfID, "Acme", models.UserRole), otherID, true, false},
		{"reviewer is not admin", payloadFor(selfID, "Acme", models.ReviewerRole), otherID, true, false},
		{"admin bypasses with override", payloadFor(selfID, "Acme", models.AdminRole), otherID, true, true},
		{"sudo bypasses with override", payloadFor(selfID, "Acme", models.SudoRole), otherID, true, true},
		{"admin denied without override", payloadFor(selfID, "Acme", models.AdminRole), otherID, false, false},
		{"nil payload denied", nil, otherID, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyUserPermission(tt.payload, tt.target, tt.allowAdmin))
		})
	}
}

func TestVerifyCompanyPermission(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		payload    *token.Payload
		target     string
		allowAdmin bool
		want       bool
	}{
		{"own company allowed", payloadFor(userID, "Acme", models.UserRole), "Acme", false, true},
		{"other company denied", payloadFor(userID, "Acme", models.UserRole), "Globex", false, false},
		{"non-admin denied with override", payloadFor(userID, "Acme", models.UserRole), "Globex", true, false},
		{"admin bypasses with override", payloadFor(userID, "Acme", models.AdminRole), "Globex", true, true},
		{"admin denied without override", payloadFor(userID, "Acme", models.AdminRole), "Globex", false, false},
		{"nil payload denied", nil, "Acme", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyCompanyPermission(tt.payload, tt.target, tt.allowAdmin))
		})
	}
}
