package models

import (
	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/engagement"
)

// FavoriteModel is the persistence model for favorite edges.
// The unique index enforces at most one edge per (user, property) pair.
type FavoriteModel struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_property,priority:1"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_property,priority:2;index"`
}

// TableName returns the table name for GORM
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ToDomain converts the persistence model to a domain Favorite entity.
func (m *FavoriteModel) ToDomain() *engagement.Favorite {
	return &engagement.Favorite{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		PropertyID: m.PropertyID,
	}
}

// FromDomain populates the persistence model from a domain Favorite entity.
func (m *FavoriteModel) FromDomain(f *engagement.Favorite) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.UserID = f.UserID
	m.PropertyID = f.PropertyID
}
