package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/persistence/models"
)

// GormPropertyRepository implements listing.PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a property by its URL slug
func (r *GormPropertyRepository) FindBySlug(ctx context.Context, slug string) (*listing.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all properties matching the filter
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]listing.Property, error) {
	var propertyModels []models.PropertyModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PropertyModel{}), filter)

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, err
	}
	return toDomainProperties(propertyModels), nil
}

// FindPublished returns a page of publicly visible properties
func (r *GormPropertyRepository) FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[listing.Property], error) {
	base := r.db.WithContext(ctx).Model(&models.PropertyModel{}).Where("is_published = ?", true)

	var total int64
	if err := r.applyFilterWithoutPagination(base.Session(&gorm.Session{}), filter).Count(&total).Error; err != nil {
		return shared.Paginated[listing.Property]{}, err
	}

	var propertyModels []models.PropertyModel
	if err := r.applyFilter(base, filter).Find(&propertyModels).Error; err != nil {
		return shared.Paginated[listing.Property]{}, err
	}

	return shared.NewPaginated(toDomainProperties(propertyModels), total, filter.Page, filter.PageSize), nil
}

// FindFeatured returns published properties flagged for the home page carousel
func (r *GormPropertyRepository) FindFeatured(ctx context.Context, limit int) ([]listing.Property, error) {
	var propertyModels []models.PropertyModel
	query := r.db.WithContext(ctx).
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, err
	}
	return toDomainProperties(propertyModels), nil
}

// FindByOwner returns all properties submitted by a user, regardless of
// moderation state.
func (r *GormPropertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]listing.Property, error) {
	var propertyModels []models.PropertyModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, err
	}
	return toDomainProperties(propertyModels), nil
}

// FindByIDs finds multiple properties by their IDs
func (r *GormPropertyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]listing.Property, error) {
	if len(ids) == 0 {
		return []listing.Property{}, nil
	}

	var propertyModels []models.PropertyModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&propertyModels).Error; err != nil {
		return nil, err
	}
	return toDomainProperties(propertyModels), nil
}

// CountByStatus counts published properties grouped by listing status
func (r *GormPropertyRepository) CountByStatus(ctx context.Context) (map[listing.ListingStatus]int64, error) {
	type statusCount struct {
		Status listing.ListingStatus
		Count  int64
	}
	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Select("status, count(*) as count").
		Where("is_published = ?", true).
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[listing.ListingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, property *listing.Property) error {
	var model models.PropertyModel
	model.FromDomain(property)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a property
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts properties matching the filter
func (r *GormPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.PropertyModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPropertyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PropertySortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPropertyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR location ILIKE ? OR description ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "property_type":
			query = query.Where("property_type = ?", value)
		case "approval_status":
			query = query.Where("approval_status = ?", value)
		case "is_featured":
			query = query.Where("is_featured = ?", value)
		case "is_published":
			query = query.Where("is_published = ?", value)
		case "min_price":
			query = query.Where("price >= ?", value)
		case "max_price":
			query = query.Where("price <= ?", value)
		}
	}

	return query
}

func toDomainProperties(propertyModels []models.PropertyModel) []listing.Property {
	properties := make([]listing.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties
}

// Ensure GormPropertyRepository implements PropertyRepository
var _ listing.PropertyRepository = (*GormPropertyRepository)(nil)
