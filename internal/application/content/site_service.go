package content

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
)

// SiteContentService manages testimonials, FAQs, service offerings, the
// hero banner, and site settings
type SiteContentService struct {
	testimonialRepo content.TestimonialRepository
	faqRepo         content.FAQRepository
	serviceRepo     content.ServiceRepository
	heroRepo        content.HeroRepository
	settingRepo     content.SettingRepository
}

// NewSiteContentService creates a new site content service
func NewSiteContentService(
	testimonialRepo content.TestimonialRepository,
	faqRepo content.FAQRepository,
	serviceRepo content.ServiceRepository,
	heroRepo content.HeroRepository,
	settingRepo content.SettingRepository,
) *SiteContentService {
	return &SiteContentService{
		testimonialRepo: testimonialRepo,
		faqRepo:         faqRepo,
		serviceRepo:     serviceRepo,
		heroRepo:        heroRepo,
		settingRepo:     settingRepo,
	}
}

// =============================================================================
// Testimonials
// =============================================================================

// ActiveTestimonials returns the testimonials shown on the home page
func (s *SiteContentService) ActiveTestimonials(ctx context.Context) ([]TestimonialResponse, error) {
	items, err := s.testimonialRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]TestimonialResponse, len(items))
	for i := range items {
		responses[i] = ToTestimonialResponse(&items[i])
	}
	return responses, nil
}

// AllTestimonials returns every testimonial for the admin console
func (s *SiteContentService) AllTestimonials(ctx context.Context) ([]TestimonialResponse, error) {
	items, err := s.testimonialRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	responses := make([]TestimonialResponse, len(items))
	for i := range items {
		responses[i] = ToTestimonialResponse(&items[i])
	}
	return responses, nil
}

// CreateTestimonial adds a testimonial
func (s *SiteContentService) CreateTestimonial(ctx context.Context, req TestimonialRequest) (*content.Testimonial, error) {
	t, err := content.NewTestimonial(req.Name, req.Role, req.Content, req.Rating)
	if err != nil {
		return nil, err
	}
	t.AvatarURL = req.AvatarURL
	t.SortOrder = req.SortOrder
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.testimonialRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTestimonial replaces a testimonial's editable fields
func (s *SiteContentService) UpdateTestimonial(ctx context.Context, id uuid.UUID, req TestimonialRequest) (*content.Testimonial, error) {
	t, err := s.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, shared.NewDomainError("INVALID_TESTIMONIAL", "Name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, shared.NewDomainError("INVALID_TESTIMONIAL", "Rating must be between 1 and 5")
	}
	t.Name = req.Name
	t.Role = req.Role
	t.AvatarURL = req.AvatarURL
	t.Content = req.Content
	t.Rating = req.Rating
	t.SortOrder = req.SortOrder
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	t.Touch()
	if err := s.testimonialRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTestimonial removes a testimonial
func (s *SiteContentService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return s.testimonialRepo.Delete(ctx, id)
}

// =============================================================================
// FAQs
// =============================================================================

// FAQs returns FAQ entries, optionally limited to one category
func (s *SiteContentService) FAQs(ctx context.Context, category string) ([]FAQResponse, error) {
	var items []content.FAQ
	var err error
	if category != "" {
		items, err = s.faqRepo.FindByCategory(ctx, category)
	} else {
		items, err = s.faqRepo.FindAll(ctx, shared.Filter{})
	}
	if err != nil {
		return nil, err
	}
	responses := make([]FAQResponse, len(items))
	for i := range items {
		responses[i] = ToFAQResponse(&items[i])
	}
	return responses, nil
}

// CreateFAQ adds a FAQ entry
func (s *SiteContentService) CreateFAQ(ctx context.Context, req FAQRequest) (*content.FAQ, error) {
	f, err := content.NewFAQ(req.Question, req.Answer, req.Category)
	if err != nil {
		return nil, err
	}
	f.SortOrder = req.SortOrder
	if err := s.faqRepo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFAQ replaces a FAQ entry's fields
func (s *SiteContentService) UpdateFAQ(ctx context.Context, id uuid.UUID, req FAQRequest) (*content.FAQ, error) {
	f, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, shared.NewDomainError("INVALID_FAQ", "Question and answer are required")
	}
	f.Question = req.Question
	f.Answer = req.Answer
	f.Category = req.Category
	f.SortOrder = req.SortOrder
	f.Touch()
	if err := s.faqRepo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFAQ removes a FAQ entry
func (s *SiteContentService) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	return s.faqRepo.Delete(ctx, id)
}

// =============================================================================
// Service offerings
// =============================================================================

// ActiveServices returns the offerings shown on the services page
func (s *SiteContentService) ActiveServices(ctx context.Context) ([]ServiceResponse, error) {
	items, err := s.serviceRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ServiceResponse, len(items))
	for i := range items {
		responses[i] = ToServiceResponse(&items[i])
	}
	return responses, nil
}

// AllServices returns every offering for the admin console
func (s *SiteContentService) AllServices(ctx context.Context) ([]ServiceResponse, error) {
	items, err := s.serviceRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	responses := make([]ServiceResponse, len(items))
	for i := range items {
		responses[i] = ToServiceResponse(&items[i])
	}
	return responses, nil
}

// ServiceBySlug returns one active offering by slug
func (s *SiteContentService) ServiceBySlug(ctx context.Context, slug string) (*content.Service, error) {
	svc, err := s.serviceRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, shared.ErrNotFound
	}
	return svc, nil
}

// CreateService adds a service offering
func (s *SiteContentService) CreateService(ctx context.Context, req ServiceRequest) (*content.Service, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, shared.NewDomainError("INVALID_SERVICE", "Service title is required")
	}
	svc := &content.Service{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       req.Title,
		Slug:        listing.Slugify(req.Title),
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		PriceFrom:   req.PriceFrom,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if err := s.ensureUniqueServiceSlug(ctx, svc); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService replaces a service offering's fields
func (s *SiteContentService) UpdateService(ctx context.Context, id uuid.UUID, req ServiceRequest) (*content.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, shared.NewDomainError("INVALID_SERVICE", "Service title is required")
	}
	if req.Title != svc.Title {
		svc.Title = req.Title
		svc.Slug = listing.Slugify(req.Title)
		if err := s.ensureUniqueServiceSlug(ctx, svc); err != nil {
			return nil, err
		}
	}
	svc.Description = req.Description
	svc.Icon = req.Icon
	svc.Features = req.Features
	svc.PriceFrom = req.PriceFrom
	svc.SortOrder = req.SortOrder
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.Touch()
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service offering
func (s *SiteContentService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.serviceRepo.Delete(ctx, id)
}

// =============================================================================
// Hero banner
// =============================================================================

// Hero returns the home page banner, or ErrNotFound if none was set yet
func (s *SiteContentService) Hero(ctx context.Context) (*content.HeroContent, error) {
	return s.heroRepo.Get(ctx)
}

// SetHero creates or replaces the home page banner
func (s *SiteContentService) SetHero(ctx context.Context, req HeroRequest) (*content.HeroContent, error) {
	hero, err := s.heroRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		hero = &content.HeroContent{BaseEntity: shared.NewBaseEntity()}
	}
	hero.Title = req.Title
	hero.Subtitle = req.Subtitle
	hero.BackgroundImageURL = req.BackgroundImageURL
	hero.Touch()
	if err := s.heroRepo.Save(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

// =============================================================================
// Site settings
// =============================================================================

// Settings returns every site setting as a flat map
func (s *SiteContentService) Settings(ctx context.Context) (SettingsResponse, error) {
	rows, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(SettingsResponse, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// UpdateSettings upserts the given keys, leaving other settings untouched
func (s *SiteContentService) UpdateSettings(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if strings.TrimSpace(key) == "" {
			return shared.NewDomainError("INVALID_SETTING", "Setting key is required")
		}
		if err := s.settingRepo.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// ensureUniqueServiceSlug suffixes the slug with a short ID on collision
func (s *SiteContentService) ensureUniqueServiceSlug(ctx context.Context, svc *content.Service) error {
	existing, err := s.serviceRepo.FindBySlug(ctx, svc.Slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == svc.ID {
		return nil
	}
	svc.Slug = svc.Slug + "-" + svc.ID.String()[:8]
	return nil
}
