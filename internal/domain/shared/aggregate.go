package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// OwnedAggregateRoot extends BaseAggregateRoot with an owning user.
// Ownership drives data-scope checks for the sell flow and favorites.
type OwnedAggregateRoot struct {
	BaseAggregateRoot
	OwnerID *uuid.UUID `gorm:"type:uuid;index"`
}

// NewOwnedAggregateRoot creates a new aggregate root owned by a user
func NewOwnedAggregateRoot(ownerID uuid.UUID) OwnedAggregateRoot {
	return OwnedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		OwnerID:           &ownerID,
	}
}

// SetOwner sets the owning user ID
func (o *OwnedAggregateRoot) SetOwner(userID uuid.UUID) {
	o.OwnerID = &userID
}

// IsOwnedBy reports whether the aggregate is owned by the given user
func (o *OwnedAggregateRoot) IsOwnedBy(userID uuid.UUID) bool {
	return o.OwnerID != nil && *o.OwnerID == userID
}
