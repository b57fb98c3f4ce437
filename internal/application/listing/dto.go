package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evergreen/backend/internal/domain/listing"
)

// =============================================================================
// Property DTOs
// =============================================================================

// FilterRequest carries the browse page filter controls
type FilterRequest struct {
	Locations      []string         `json:"locations" form:"locations"`
	PriceRange     string           `json:"price_range" form:"price_range" binding:"omitempty,oneof=under-1000 1000-15000 over-15000 custom"`
	CustomPriceMin *decimal.Decimal `json:"custom_price_min" form:"custom_price_min"`
	CustomPriceMax *decimal.Decimal `json:"custom_price_max" form:"custom_price_max"`
	LandAreaMin    string           `json:"land_area_min" form:"land_area_min"`
	LandAreaMax    string           `json:"land_area_max" form:"land_area_max"`
	PropertyTypes  []string         `json:"property_types" form:"property_types"`
	Amenities      []string         `json:"amenities" form:"amenities"`
}

// ToFilterState converts the request into the domain filter state
func (r FilterRequest) ToFilterState() listing.FilterState {
	return listing.FilterState{
		Locations:      r.Locations,
		PriceRange:     r.PriceRange,
		CustomPriceMin: r.CustomPriceMin,
		CustomPriceMax: r.CustomPriceMax,
		LandAreaMin:    r.LandAreaMin,
		LandAreaMax:    r.LandAreaMax,
		PropertyTypes:  r.PropertyTypes,
		Amenities:      r.Amenities,
	}
}

// BrowseRequest represents a public browse query
type BrowseRequest struct {
	Status   string `json:"status" form:"status" binding:"omitempty,oneof=for_sale for_rent"`
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
	Filter   FilterRequest
}

// CreatePropertyRequest represents an admin request to create a listing
type CreatePropertyRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=300"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price" binding:"required"`
	Location     string           `json:"location" binding:"required,max=300"`
	Address      string           `json:"address" binding:"max=500"`
	PropertyType string           `json:"property_type" binding:"required,max=100"`
	Status       string           `json:"status" binding:"required,oneof=for_sale for_rent"`
	Bedrooms     int              `json:"bedrooms" binding:"min=0"`
	Bathrooms    int              `json:"bathrooms" binding:"min=0"`
	AreaSqft     int              `json:"area_sqft" binding:"min=0"`
	LandArea     *decimal.Decimal `json:"land_area"`
	YearBuilt    *int             `json:"year_built"`
	Amenities    []string         `json:"amenities"`
	ImageURLs    []string         `json:"image_urls"`
	IsFeatured   bool             `json:"is_featured"`
	ContactName  string           `json:"contact_name" binding:"max=200"`
	ContactEmail string           `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone string           `json:"contact_phone" binding:"max=50"`
}

// SubmitPropertyRequest represents a sell-flow submission from a site user
type SubmitPropertyRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=300"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price" binding:"required"`
	Location     string           `json:"location" binding:"required,max=300"`
	Address      string           `json:"address" binding:"max=500"`
	PropertyType string           `json:"property_type" binding:"required,max=100"`
	Status       string           `json:"status" binding:"required,oneof=for_sale for_rent"`
	Bedrooms     int              `json:"bedrooms" binding:"min=0"`
	Bathrooms    int              `json:"bathrooms" binding:"min=0"`
	AreaSqft     int              `json:"area_sqft" binding:"min=0"`
	LandArea     *decimal.Decimal `json:"land_area"`
	Amenities    []string         `json:"amenities"`
	ImageURLs    []string         `json:"image_urls"`
	ContactName  string           `json:"contact_name" binding:"required,max=200"`
	ContactEmail string           `json:"contact_email" binding:"required,email,max=200"`
	ContactPhone string           `json:"contact_phone" binding:"max=50"`
}

// UpdatePropertyRequest represents an admin request to update a listing
type UpdatePropertyRequest struct {
	Title        *string          `json:"title" binding:"omitempty,min=1,max=300"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Location     *string          `json:"location" binding:"omitempty,max=300"`
	Address      *string          `json:"address" binding:"omitempty,max=500"`
	PropertyType *string          `json:"property_type" binding:"omitempty,max=100"`
	Status       *string          `json:"status" binding:"omitempty,oneof=for_sale for_rent"`
	Bedrooms     *int             `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms    *int             `json:"bathrooms" binding:"omitempty,min=0"`
	AreaSqft     *int             `json:"area_sqft" binding:"omitempty,min=0"`
	LandArea     *decimal.Decimal `json:"land_area"`
	YearBuilt    *int             `json:"year_built"`
	Amenities    []string         `json:"amenities"`
	ImageURLs    []string         `json:"image_urls"`
	IsFeatured   *bool            `json:"is_featured"`
	IsPublished  *bool            `json:"is_published"`
	ContactName  *string          `json:"contact_name" binding:"omitempty,max=200"`
	ContactEmail *string          `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone *string          `json:"contact_phone" binding:"omitempty,max=50"`
}

// AdminListFilter represents the admin listing table query
type AdminListFilter struct {
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
	OrderBy        string `form:"order_by"`
	OrderDir       string `form:"order_dir"`
	Search         string `form:"search"`
	Status         string `form:"status" binding:"omitempty,oneof=for_sale for_rent"`
	ApprovalStatus string `form:"approval_status" binding:"omitempty,oneof=pending approved rejected"`
	Featured       *bool  `form:"featured"`
	Published      *bool  `form:"published"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID             uuid.UUID        `json:"id"`
	OwnerID        *uuid.UUID       `json:"owner_id,omitempty"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	Location       string           `json:"location"`
	Address        string           `json:"address"`
	PropertyType   string           `json:"property_type"`
	Status         string           `json:"status"`
	ApprovalStatus string           `json:"approval_status"`
	Bedrooms       int              `json:"bedrooms"`
	Bathrooms      int              `json:"bathrooms"`
	AreaSqft       int              `json:"area_sqft"`
	LandArea       *decimal.Decimal `json:"land_area,omitempty"`
	YearBuilt      *int             `json:"year_built,omitempty"`
	Amenities      []string         `json:"amenities"`
	ImageURLs      []string         `json:"image_urls"`
	IsFeatured     bool             `json:"is_featured"`
	IsPublished    bool             `json:"is_published"`
	ContactName    string           `json:"contact_name"`
	ContactEmail   string           `json:"contact_email"`
	ContactPhone   string           `json:"contact_phone"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PropertyListResponse is the compact card shape used by list endpoints
type PropertyListResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	PropertyType string          `json:"property_type"`
	Status       string          `json:"status"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	AreaSqft     int             `json:"area_sqft"`
	ImageURL     string          `json:"image_url"`
	IsFeatured   bool            `json:"is_featured"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToPropertyResponse converts a domain property to the full response shape
func ToPropertyResponse(p *listing.Property) PropertyResponse {
	return PropertyResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Title:          p.Title,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		Location:       p.Location,
		Address:        p.Address,
		PropertyType:   p.PropertyType,
		Status:         string(p.Status),
		ApprovalStatus: string(p.ApprovalStatus),
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		AreaSqft:       p.AreaSqft,
		LandArea:       p.LandArea,
		YearBuilt:      p.YearBuilt,
		Amenities:      p.Amenities,
		ImageURLs:      p.ImageURLs,
		IsFeatured:     p.IsFeatured,
		IsPublished:    p.IsPublished,
		ContactName:    p.ContactName,
		ContactEmail:   p.ContactEmail,
		ContactPhone:   p.ContactPhone,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPropertyListResponse converts a domain property to the card shape
func ToPropertyListResponse(p *listing.Property) PropertyListResponse {
	imageURL := ""
	if len(p.ImageURLs) > 0 {
		imageURL = p.ImageURLs[0]
	}
	return PropertyListResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Price:        p.Price,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		Status:       string(p.Status),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		AreaSqft:     p.AreaSqft,
		ImageURL:     imageURL,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt,
	}
}

// ToPropertyListResponses converts a slice of domain properties
func ToPropertyListResponses(properties []listing.Property) []PropertyListResponse {
	responses := make([]PropertyListResponse, len(properties))
	for i := range properties {
		responses[i] = ToPropertyListResponse(&properties[i])
	}
	return responses
}
