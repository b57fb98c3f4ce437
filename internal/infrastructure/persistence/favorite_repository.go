package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evergreen/backend/internal/domain/engagement"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/persistence/models"
)

// GormFavoriteRepository implements engagement.FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// FindByUser returns all favorite edges for a user, newest first
func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]engagement.Favorite, error) {
	var favoriteModels []models.FavoriteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, err
	}

	favorites := make([]engagement.Favorite, len(favoriteModels))
	for i, model := range favoriteModels {
		favorites[i] = *model.ToDomain()
	}
	return favorites, nil
}

// Exists checks whether a favorite edge exists for the (user, property) pair
func (r *GormFavoriteRepository) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a favorite edge. The unique index on (user_id, property_id)
// rejects a second edge for the same pair.
func (r *GormFavoriteRepository) Save(ctx context.Context, favorite *engagement.Favorite) error {
	var model models.FavoriteModel
	model.FromDomain(favorite)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Remove deletes the favorite edge for the (user, property) pair
func (r *GormFavoriteRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.FavoriteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByProperty counts how many users saved a property
func (r *GormFavoriteRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormFavoriteRepository implements FavoriteRepository
var _ engagement.FavoriteRepository = (*GormFavoriteRepository)(nil)
