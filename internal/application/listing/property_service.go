package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/telemetry"
)

// FeaturedLimit caps the home page carousel size
const FeaturedLimit = 6

// DefaultBrowsePageSize is the card grid size on the browse page
const DefaultBrowsePageSize = 12

// PropertyService handles property browsing, the sell flow, and admin
// listing management.
type PropertyService struct {
	propertyRepo    listing.PropertyRepository
	businessMetrics *telemetry.BusinessMetrics
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo listing.PropertyRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *PropertyService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Browse returns the published listings matching the filter controls.
// The filter predicates run in memory over the published set so the
// matching rules stay identical to the domain filter semantics.
func (s *PropertyService) Browse(ctx context.Context, req BrowseRequest) ([]PropertyListResponse, int64, error) {
	domainFilter := shared.Filter{
		Filters: make(map[string]interface{}),
	}
	if req.Status != "" {
		domainFilter.Filters["status"] = req.Status
	}

	page, err := s.propertyRepo.FindPublished(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	matched := listing.Filter(page.Items, req.Filter.ToFilterState())
	total := int64(len(matched))

	pageNum := req.Page
	if pageNum <= 0 {
		pageNum = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = DefaultBrowsePageSize
	}

	start := (pageNum - 1) * pageSize
	if start >= len(matched) {
		return []PropertyListResponse{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return ToPropertyListResponses(matched[start:end]), total, nil
}

// GetBySlug returns a published property for the public detail page
func (s *PropertyService) GetBySlug(ctx context.Context, slug string) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !property.IsPublished {
		return nil, shared.ErrNotFound
	}
	response := ToPropertyResponse(property)
	return &response, nil
}

// GetByID returns a property regardless of publication state
func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPropertyResponse(property)
	return &response, nil
}

// Featured returns the home page carousel entries
func (s *PropertyService) Featured(ctx context.Context) ([]PropertyListResponse, error) {
	properties, err := s.propertyRepo.FindFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	return ToPropertyListResponses(properties), nil
}

// Create creates a listed property on behalf of the agency
func (s *PropertyService) Create(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	property, err := listing.NewProperty(req.Title, req.Location, req.PropertyType, req.Price, listing.ListingStatus(req.Status))
	if err != nil {
		return nil, err
	}
	s.applyDetails(property, req)
	property.SetFeatured(req.IsFeatured)

	if err := s.ensureUniqueSlug(ctx, property); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// Submit creates a pending, unpublished listing from the sell flow
func (s *PropertyService) Submit(ctx context.Context, ownerID uuid.UUID, req SubmitPropertyRequest) (*PropertyResponse, error) {
	property, err := listing.NewSubmission(ownerID, req.Title, req.Location, req.PropertyType, req.Price, listing.ListingStatus(req.Status))
	if err != nil {
		return nil, err
	}
	s.applyDetails(property, CreatePropertyRequest{
		Description:  req.Description,
		Address:      req.Address,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
		LandArea:     req.LandArea,
		Amenities:    req.Amenities,
		ImageURLs:    req.ImageURLs,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})

	if err := s.ensureUniqueSlug(ctx, property); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordListingSubmitted(ctx, property.PropertyType)
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// MyListings returns all submissions by a user, including pending ones
func (s *PropertyService) MyListings(ctx context.Context, ownerID uuid.UUID) ([]PropertyResponse, error) {
	properties, err := s.propertyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = ToPropertyResponse(&properties[i])
	}
	return responses, nil
}

// AdminList returns the back-office listing table, including unpublished rows
func (s *PropertyService) AdminList(ctx context.Context, filter AdminListFilter) ([]PropertyResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ApprovalStatus != "" {
		domainFilter.Filters["approval_status"] = filter.ApprovalStatus
	}
	if filter.Featured != nil {
		domainFilter.Filters["is_featured"] = *filter.Featured
	}
	if filter.Published != nil {
		domainFilter.Filters["is_published"] = *filter.Published
	}

	properties, err := s.propertyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.propertyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = ToPropertyResponse(&properties[i])
	}
	return responses, total, nil
}

// Update applies an admin edit to a listing
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != property.Title {
		property.Title = *req.Title
		property.Slug = listing.Slugify(*req.Title)
		if err := s.ensureUniqueSlug(ctx, property); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PROPERTY", "Property price cannot be negative")
		}
		property.Price = *req.Price
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.Status != nil {
		property.Status = listing.ListingStatus(*req.Status)
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.AreaSqft != nil {
		property.AreaSqft = *req.AreaSqft
	}
	if req.LandArea != nil {
		property.LandArea = req.LandArea
	}
	if req.YearBuilt != nil {
		property.YearBuilt = req.YearBuilt
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
	if req.ImageURLs != nil {
		property.ImageURLs = req.ImageURLs
	}
	if req.IsFeatured != nil {
		property.SetFeatured(*req.IsFeatured)
	}
	if req.IsPublished != nil {
		if *req.IsPublished {
			if err := property.Publish(); err != nil {
				return nil, err
			}
		} else {
			property.Unpublish()
		}
	}
	if req.ContactName != nil {
		property.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		property.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		property.ContactPhone = *req.ContactPhone
	}
	property.Touch()

	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// Approve accepts a pending submission and publishes it
func (s *PropertyService) Approve(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	response, err := s.moderate(ctx, id, (*listing.Property).Approve)
	if err != nil {
		return nil, err
	}
	if s.businessMetrics != nil {
		s.businessMetrics.RecordListingPublished(ctx, response.PropertyType, response.Price)
	}
	return response, nil
}

// Reject declines a pending submission
func (s *PropertyService) Reject(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	return s.moderate(ctx, id, (*listing.Property).Reject)
}

// MarkSold closes out a for_sale listing
func (s *PropertyService) MarkSold(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	return s.moderate(ctx, id, (*listing.Property).MarkSold)
}

// MarkRented closes out a for_rent listing
func (s *PropertyService) MarkRented(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	return s.moderate(ctx, id, (*listing.Property).MarkRented)
}

// SetFeatured toggles the home page carousel flag
func (s *PropertyService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	property.SetFeatured(featured)
	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}
	response := ToPropertyResponse(property)
	return &response, nil
}

// Delete removes a listing
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.propertyRepo.Delete(ctx, id)
}

// CountByStatus reports the number of published listings per status
func (s *PropertyService) CountByStatus(ctx context.Context) (map[listing.ListingStatus]int64, error) {
	return s.propertyRepo.CountByStatus(ctx)
}

func (s *PropertyService) moderate(ctx context.Context, id uuid.UUID, transition func(*listing.Property) error) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(property); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}
	response := ToPropertyResponse(property)
	return &response, nil
}

func (s *PropertyService) applyDetails(property *listing.Property, req CreatePropertyRequest) {
	property.Description = req.Description
	property.Address = req.Address
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.AreaSqft = req.AreaSqft
	property.LandArea = req.LandArea
	property.YearBuilt = req.YearBuilt
	property.Amenities = req.Amenities
	property.ImageURLs = req.ImageURLs
	property.ContactName = req.ContactName
	property.ContactEmail = req.ContactEmail
	property.ContactPhone = req.ContactPhone
}

// ensureUniqueSlug appends a short ID suffix when the slug is taken
func (s *PropertyService) ensureUniqueSlug(ctx context.Context, property *listing.Property) error {
	existing, err := s.propertyRepo.FindBySlug(ctx, property.Slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == property.ID {
		return nil
	}
	property.Slug = property.Slug + "-" + property.ID.String()[:8]
	return nil
}
