package identity

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/evergreen/backend/internal/domain/shared"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"
	UserStatusDeactivated UserStatus = "deactivated"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a site account. It is the aggregate root for
// identity-related operations; profile fields ride along with the account.
type User struct {
	shared.BaseAggregateRoot
	Email          string
	PasswordHash   string
	FullName       string
	Phone          string
	AvatarURL      string
	Status         UserStatus
	LastLoginAt    *time.Time
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewUser creates a new active user account
func NewUser(email, password, fullName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		FullName:          strings.TrimSpace(fullName),
		Status:            UserStatusActive,
	}, nil
}

// UpdateProfile updates the user's profile fields
func (u *User) UpdateProfile(fullName, phone, avatarURL string) error {
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_PROFILE", "Full name cannot exceed 200 characters")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PROFILE", "Phone cannot exceed 50 characters")
	}
	if avatarURL != "" && len(avatarURL) > 500 {
		return shared.NewDomainError("INVALID_PROFILE", "Avatar URL cannot exceed 500 characters")
	}

	u.FullName = strings.TrimSpace(fullName)
	u.Phone = strings.TrimSpace(phone)
	u.AvatarURL = avatarURL
	u.Touch()
	u.IncrementVersion()
	return nil
}

// ChangePassword changes the password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// VerifyPassword verifies whether the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess() {
	now := time.Now()
	u.LastLoginAt = &now
	u.FailedAttempts = 0
	u.Touch()
	u.IncrementVersion()
}

// RecordLoginFailure records a failed login attempt and locks the account
// once maxAttempts is reached. Returns true when the account was locked.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.Touch()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		u.Status = UserStatusLocked
		if lockDuration > 0 {
			lockedUntil := time.Now().Add(lockDuration)
			u.LockedUntil = &lockedUntil
		}
		return true
	}
	return false
}

// Deactivate deactivates the account
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}
	u.Status = UserStatusDeactivated
	u.Touch()
	u.IncrementVersion()
	return nil
}

// Activate reactivates a deactivated or locked account
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}
	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.Touch()
	u.IncrementVersion()
	return nil
}

// IsLocked returns true if the account is locked and the lock has not expired
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}
	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}
	return true
}

// CanLogin returns true if the account may log in
func (u *User) CanLogin() bool {
	return u.Status != UserStatusDeactivated && !u.IsLocked()
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
