package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email          string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash   string              `gorm:"type:varchar(100);not null"`
	FullName       string              `gorm:"type:varchar(200)"`
	Phone          string              `gorm:"type:varchar(50)"`
	AvatarURL      string              `gorm:"type:varchar(500)"`
	Status         identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt    *time.Time
	FailedAttempts int `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FullName:          m.FullName,
		Phone:             m.Phone,
		AvatarURL:         m.AvatarURL,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FullName = u.FullName
	m.Phone = u.Phone
	m.AvatarURL = u.AvatarURL
	m.Status = u.Status
	m.LastLoginAt = u.LastLoginAt
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// AdminUserModel is the persistence model for admin membership rows.
type AdminUserModel struct {
	BaseModel
	UserID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex"`
	Role   identity.AdminRole `gorm:"type:varchar(20);not null;default:'admin'"`
}

// TableName returns the table name for GORM
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// ToDomain converts the persistence model to a domain AdminUser entity.
func (m *AdminUserModel) ToDomain() *identity.AdminUser {
	return &identity.AdminUser{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Role:       m.Role,
	}
}

// FromDomain populates the persistence model from a domain AdminUser entity.
func (m *AdminUserModel) FromDomain(a *identity.AdminUser) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.UserID = a.UserID
	m.Role = a.Role
}
