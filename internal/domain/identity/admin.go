package identity

import (
	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/shared"
)

// AdminRole represents the level of back-office access
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// AdminUser is the membership row that grants a user access to the admin
// area. Absence of a row means no admin access regardless of account state.
type AdminUser struct {
	shared.BaseEntity
	UserID uuid.UUID
	Role   AdminRole
}

// NewAdminUser grants admin membership to a user
func NewAdminUser(userID uuid.UUID, role AdminRole) (*AdminUser, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADMIN", "User ID is required")
	}
	if role != AdminRoleAdmin && role != AdminRoleSuperAdmin {
		return nil, shared.NewDomainError("INVALID_ADMIN", "Role must be admin or super_admin")
	}
	return &AdminUser{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Role:       role,
	}, nil
}

// IsSuperAdmin reports whether the membership carries the super_admin role
func (a *AdminUser) IsSuperAdmin() bool {
	return a.Role == AdminRoleSuperAdmin
}

// ChangeRole updates the membership role
func (a *AdminUser) ChangeRole(role AdminRole) error {
	if role != AdminRoleAdmin && role != AdminRoleSuperAdmin {
		return shared.NewDomainError("INVALID_ADMIN", "Role must be admin or super_admin")
	}
	a.Role = role
	a.Touch()
	return nil
}
