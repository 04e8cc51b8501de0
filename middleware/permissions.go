package middleware

import (
	"github.com/YiChiaPeng/ryan-travel-agency/token"

	"github.com/google/uuid"
)

// VerifyUserPermission allows a user to act on their own resources, with an
// optional admin override. This plus VerifyCompanyPermission is the entire
// authorization model.
func VerifyUserPermission(current *token.Payload, targetUserID uuid.UUID, allowAdmin bool) bool {
	if current == nil {
		return false
	}
	if current.UserID == targetUserID {
		return true
	}
	if allowAdmin && current.IsAdmin {
		return true
	}
	return false
}

// VerifyCompanyPermission allows access to a company's data only for members
// of that company, with an optional admin override.
func VerifyCompanyPermission(current *token.Payload, targetCompany string, allowAdmin bool) bool {
	if current == nil {
		return false
	}
	if current.Company == targetCompany {
		return true
	}
	if allowAdmin && current.IsAdmin {
		return true
	}
	return false
}
