package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/shared"
)

// UserRepository defines the persistence interface for user accounts
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AdminUserRepository defines the persistence interface for admin membership
type AdminUserRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*AdminUser, error)
	FindAll(ctx context.Context) ([]AdminUser, error)
	Save(ctx context.Context, admin *AdminUser) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
