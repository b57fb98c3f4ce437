package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/shared"
)

// Favorite is the ownership edge between a user and a property.
// At most one edge exists per (user, property) pair.
type Favorite struct {
	shared.BaseEntity
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// NewFavorite creates a favorite edge
func NewFavorite(userID, propertyID uuid.UUID) (*Favorite, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FAVORITE", "User ID is required")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FAVORITE", "Property ID is required")
	}
	return &Favorite{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		PropertyID: propertyID,
	}, nil
}

// FavoriteRepository defines the persistence interface for favorite edges
type FavoriteRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	Save(ctx context.Context, favorite *Favorite) error
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}
