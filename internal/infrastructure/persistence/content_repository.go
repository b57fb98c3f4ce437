package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/persistence/models"
)

// GormBlogPostRepository implements content.BlogPostRepository using GORM
type GormBlogPostRepository struct {
	db *gorm.DB
}

// NewGormBlogPostRepository creates a new GormBlogPostRepository
func NewGormBlogPostRepository(db *gorm.DB) *GormBlogPostRepository {
	return &GormBlogPostRepository{db: db}
}

// FindByID finds a blog post by its ID
func (r *GormBlogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a blog post by its slug
func (r *GormBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all blog posts matching the filter
func (r *GormBlogPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	var postModels []models.BlogPostModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.BlogPostModel{}), filter)
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toDomainBlogPosts(postModels), nil
}

// FindPublished returns a page of published posts, newest publication first
func (r *GormBlogPostRepository) FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[content.BlogPost], error) {
	base := r.db.WithContext(ctx).
		Model(&models.BlogPostModel{}).
		Where("published = ?", true)
	if category, ok := filter.Filters["category"]; ok {
		base = base.Where("category = ?", category)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		base = base.Where("title ILIKE ? OR excerpt ILIKE ?", searchPattern, searchPattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[content.BlogPost]{}, err
	}

	query := base.Order("published_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var postModels []models.BlogPostModel
	if err := query.Find(&postModels).Error; err != nil {
		return shared.Paginated[content.BlogPost]{}, err
	}
	return shared.NewPaginated(toDomainBlogPosts(postModels), total, filter.Page, filter.PageSize), nil
}

// Save creates or updates a blog post
func (r *GormBlogPostRepository) Save(ctx context.Context, post *content.BlogPost) error {
	var model models.BlogPostModel
	model.FromDomain(post)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a blog post
func (r *GormBlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BlogPostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts blog posts matching the filter
func (r *GormBlogPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.BlogPostModel{})
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", searchPattern, searchPattern)
	}
	if published, ok := filter.Filters["published"]; ok {
		query = query.Where("published = ?", published)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormBlogPostRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", searchPattern, searchPattern)
	}
	if published, ok := filter.Filters["published"]; ok {
		query = query.Where("published = ?", published)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}

	orderBy := ValidateSortField(filter.OrderBy, BlogPostSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

func toDomainBlogPosts(postModels []models.BlogPostModel) []content.BlogPost {
	posts := make([]content.BlogPost, len(postModels))
	for i, model := range postModels {
		posts[i] = *model.ToDomain()
	}
	return posts
}

// Ensure GormBlogPostRepository implements BlogPostRepository
var _ content.BlogPostRepository = (*GormBlogPostRepository)(nil)

// GormTestimonialRepository implements content.TestimonialRepository using GORM
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewGormTestimonialRepository creates a new GormTestimonialRepository
func NewGormTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// FindByID finds a testimonial by its ID
func (r *GormTestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Testimonial, error) {
	var model models.TestimonialModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all testimonials matching the filter
func (r *GormTestimonialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Testimonial, error) {
	var testimonialModels []models.TestimonialModel
	query := r.db.WithContext(ctx).Model(&models.TestimonialModel{})
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	query = query.Order("sort_order ASC, created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&testimonialModels).Error; err != nil {
		return nil, err
	}

	testimonials := make([]content.Testimonial, len(testimonialModels))
	for i, model := range testimonialModels {
		testimonials[i] = *model.ToDomain()
	}
	return testimonials, nil
}

// FindActive returns active testimonials ordered for display
func (r *GormTestimonialRepository) FindActive(ctx context.Context) ([]content.Testimonial, error) {
	filter := shared.DefaultFilter()
	filter.Page = 0
	filter.PageSize = 0
	filter.Filters["is_active"] = true
	return r.FindAll(ctx, filter)
}

// Save creates or updates a testimonial
func (r *GormTestimonialRepository) Save(ctx context.Context, testimonial *content.Testimonial) error {
	var model models.TestimonialModel
	model.FromDomain(testimonial)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a testimonial
func (r *GormTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TestimonialModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts testimonials matching the filter
func (r *GormTestimonialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.TestimonialModel{})
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormTestimonialRepository implements TestimonialRepository
var _ content.TestimonialRepository = (*GormTestimonialRepository)(nil)

// GormFAQRepository implements content.FAQRepository using GORM
type GormFAQRepository struct {
	db *gorm.DB
}

// NewGormFAQRepository creates a new GormFAQRepository
func NewGormFAQRepository(db *gorm.DB) *GormFAQRepository {
	return &GormFAQRepository{db: db}
}

// FindByID finds a FAQ entry by its ID
func (r *GormFAQRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.FAQ, error) {
	var model models.FAQModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all FAQ entries matching the filter
func (r *GormFAQRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.FAQ, error) {
	var faqModels []models.FAQModel
	query := r.db.WithContext(ctx).Model(&models.FAQModel{})
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	query = query.Order("sort_order ASC, created_at ASC")
	if err := query.Find(&faqModels).Error; err != nil {
		return nil, err
	}

	faqs := make([]content.FAQ, len(faqModels))
	for i, model := range faqModels {
		faqs[i] = *model.ToDomain()
	}
	return faqs, nil
}

// FindByCategory returns FAQ entries in a category ordered for display
func (r *GormFAQRepository) FindByCategory(ctx context.Context, category string) ([]content.FAQ, error) {
	filter := shared.DefaultFilter()
	filter.Filters["category"] = category
	return r.FindAll(ctx, filter)
}

// Save creates or updates a FAQ entry
func (r *GormFAQRepository) Save(ctx context.Context, faq *content.FAQ) error {
	var model models.FAQModel
	model.FromDomain(faq)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a FAQ entry
func (r *GormFAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts FAQ entries matching the filter
func (r *GormFAQRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.FAQModel{})
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormFAQRepository implements FAQRepository
var _ content.FAQRepository = (*GormFAQRepository)(nil)

// GormServiceRepository implements content.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a service offering by its ID
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a service offering by its slug
func (r *GormServiceRepository) FindBySlug(ctx context.Context, slug string) (*content.Service, error) {
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all service offerings matching the filter
func (r *GormServiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Service, error) {
	var serviceModels []models.ServiceModel
	query := r.db.WithContext(ctx).Model(&models.ServiceModel{})
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	query = query.Order("sort_order ASC, created_at ASC")
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	services := make([]content.Service, len(serviceModels))
	for i, model := range serviceModels {
		services[i] = *model.ToDomain()
	}
	return services, nil
}

// FindActive returns active service offerings ordered for display
func (r *GormServiceRepository) FindActive(ctx context.Context) ([]content.Service, error) {
	filter := shared.DefaultFilter()
	filter.Filters["is_active"] = true
	return r.FindAll(ctx, filter)
}

// Save creates or updates a service offering
func (r *GormServiceRepository) Save(ctx context.Context, service *content.Service) error {
	var model models.ServiceModel
	model.FromDomain(service)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a service offering
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts service offerings matching the filter
func (r *GormServiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ServiceModel{})
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormServiceRepository implements ServiceRepository
var _ content.ServiceRepository = (*GormServiceRepository)(nil)

// GormMediaRepository implements content.MediaRepository using GORM
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a new GormMediaRepository
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// FindByID finds a media asset by its ID
func (r *GormMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.MediaAsset, error) {
	var model models.MediaAssetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all media assets matching the filter
func (r *GormMediaRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.MediaAsset, error) {
	var assetModels []models.MediaAssetModel
	query := r.db.WithContext(ctx).Model(&models.MediaAssetModel{})
	if folder, ok := filter.Filters["folder"]; ok {
		query = query.Where("folder = ?", folder)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = query.Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&assetModels).Error; err != nil {
		return nil, err
	}

	assets := make([]content.MediaAsset, len(assetModels))
	for i, model := range assetModels {
		assets[i] = *model.ToDomain()
	}
	return assets, nil
}

// FindByFolder returns media assets in a folder, newest first
func (r *GormMediaRepository) FindByFolder(ctx context.Context, folder string) ([]content.MediaAsset, error) {
	filter := shared.DefaultFilter()
	filter.Page = 0
	filter.PageSize = 0
	filter.Filters["folder"] = folder
	return r.FindAll(ctx, filter)
}

// Save creates or updates a media asset
func (r *GormMediaRepository) Save(ctx context.Context, asset *content.MediaAsset) error {
	var model models.MediaAssetModel
	model.FromDomain(asset)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a media asset record
func (r *GormMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MediaAssetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts media assets matching the filter
func (r *GormMediaRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.MediaAssetModel{})
	if folder, ok := filter.Filters["folder"]; ok {
		query = query.Where("folder = ?", folder)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMediaRepository implements MediaRepository
var _ content.MediaRepository = (*GormMediaRepository)(nil)

// GormHeroRepository implements content.HeroRepository using GORM.
// The hero table holds at most one row.
type GormHeroRepository struct {
	db *gorm.DB
}

// NewGormHeroRepository creates a new GormHeroRepository
func NewGormHeroRepository(db *gorm.DB) *GormHeroRepository {
	return &GormHeroRepository{db: db}
}

// Get returns the hero banner row
func (r *GormHeroRepository) Get(ctx context.Context) (*content.HeroContent, error) {
	var model models.HeroContentModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates the hero banner row
func (r *GormHeroRepository) Save(ctx context.Context, hero *content.HeroContent) error {
	var model models.HeroContentModel
	model.FromDomain(hero)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Ensure GormHeroRepository implements HeroRepository
var _ content.HeroRepository = (*GormHeroRepository)(nil)

// GormSettingRepository implements content.SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetAll returns every setting row
func (r *GormSettingRepository) GetAll(ctx context.Context) ([]content.SiteSetting, error) {
	var settingModels []models.SiteSettingModel
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]content.SiteSetting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = *model.ToDomain()
	}
	return settings, nil
}

// Get returns the setting row for a key
func (r *GormSettingRepository) Get(ctx context.Context, key string) (*content.SiteSetting, error) {
	var model models.SiteSettingModel
	if err := r.db.WithContext(ctx).First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Set upserts the value for a key
func (r *GormSettingRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_SETTING", "Setting key cannot be empty")
	}
	var model models.SiteSettingModel
	model.FromDomain(&content.SiteSetting{
		BaseEntity: shared.NewBaseEntity(),
		Key:        key,
		Value:      value,
	})
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
		}).
		Create(&model).Error
}

// Ensure GormSettingRepository implements SettingRepository
var _ content.SettingRepository = (*GormSettingRepository)(nil)
