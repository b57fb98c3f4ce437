package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evergreen/backend/internal/domain/inquiry"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/persistence/models"
)

// GormInquiryRepository implements inquiry.Repository using GORM
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GormInquiryRepository
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// FindByID finds an inquiry by its ID
func (r *GormInquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all inquiries matching the filter
func (r *GormInquiryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inquiry.Inquiry, error) {
	var inquiryModels []models.InquiryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InquiryModel{}), filter)
	if err := query.Find(&inquiryModels).Error; err != nil {
		return nil, err
	}
	return toDomainInquiries(inquiryModels), nil
}

// FindByStatus returns a page of inquiries in the given status
func (r *GormInquiryRepository) FindByStatus(ctx context.Context, status inquiry.InquiryStatus, filter shared.Filter) (shared.Paginated[inquiry.Inquiry], error) {
	base := r.db.WithContext(ctx).
		Model(&models.InquiryModel{}).
		Where("status = ?", status)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[inquiry.Inquiry]{}, err
	}

	orderBy := ValidateSortField(filter.OrderBy, InquirySortFields, "created_at")
	query := base.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var inquiryModels []models.InquiryModel
	if err := query.Find(&inquiryModels).Error; err != nil {
		return shared.Paginated[inquiry.Inquiry]{}, err
	}
	return shared.NewPaginated(toDomainInquiries(inquiryModels), total, filter.Page, filter.PageSize), nil
}

// FindByProperty returns all inquiries about a property, newest first
func (r *GormInquiryRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]inquiry.Inquiry, error) {
	var inquiryModels []models.InquiryModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&inquiryModels).Error; err != nil {
		return nil, err
	}
	return toDomainInquiries(inquiryModels), nil
}

// CountNew counts inquiries that have not been read yet
func (r *GormInquiryRepository) CountNew(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InquiryModel{}).
		Where("status = ?", inquiry.StatusNew).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an inquiry
func (r *GormInquiryRepository) Save(ctx context.Context, inq *inquiry.Inquiry) error {
	var model models.InquiryModel
	model.FromDomain(inq)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes an inquiry
func (r *GormInquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InquiryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts inquiries matching the filter
func (r *GormInquiryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.InquiryModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInquiryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, InquirySortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

func (r *GormInquiryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR message ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if propertyID, ok := filter.Filters["property_id"]; ok {
		query = query.Where("property_id = ?", propertyID)
	}
	return query
}

func toDomainInquiries(inquiryModels []models.InquiryModel) []inquiry.Inquiry {
	inquiries := make([]inquiry.Inquiry, len(inquiryModels))
	for i, model := range inquiryModels {
		inquiries[i] = *model.ToDomain()
	}
	return inquiries
}

// Ensure GormInquiryRepository implements Repository
var _ inquiry.Repository = (*GormInquiryRepository)(nil)
