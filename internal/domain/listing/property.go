package listing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evergreen/backend/internal/domain/shared"
)

// ListingStatus represents whether a property is offered for sale or rent
type ListingStatus string

const (
	StatusForSale ListingStatus = "for_sale"
	StatusForRent ListingStatus = "for_rent"
	StatusSold    ListingStatus = "sold"
	StatusRented  ListingStatus = "rented"
)

// ApprovalStatus tracks moderation of user-submitted listings
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Property is the aggregate root for a real estate listing
type Property struct {
	shared.OwnedAggregateRoot
	Title          string
	Slug           string
	Description    string
	Price          decimal.Decimal
	Location       string
	Address        string
	PropertyType   string
	Status         ListingStatus
	ApprovalStatus ApprovalStatus
	Bedrooms       int
	Bathrooms      int
	AreaSqft       int
	LandArea       *decimal.Decimal
	YearBuilt      *int
	Amenities      []string
	ImageURLs      []string
	IsFeatured     bool
	IsPublished    bool
	ContactName    string
	ContactEmail   string
	ContactPhone   string
}

// NewProperty creates a published listing in the given status
func NewProperty(title, location, propertyType string, price decimal.Decimal, status ListingStatus) (*Property, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property title is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property price cannot be negative")
	}
	if status != StatusForSale && status != StatusForRent {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Listing status must be for_sale or for_rent")
	}
	return &Property{
		OwnedAggregateRoot: shared.OwnedAggregateRoot{BaseAggregateRoot: shared.NewBaseAggregateRoot()},
		Title:              title,
		Slug:               Slugify(title),
		Location:           location,
		PropertyType:       propertyType,
		Price:              price,
		Status:             status,
		ApprovalStatus:     ApprovalApproved,
		IsPublished:        true,
	}, nil
}

// NewSubmission creates a listing submitted by a site user through the sell
// flow. Submissions start unpublished and pending moderation.
func NewSubmission(ownerID uuid.UUID, title, location, propertyType string, price decimal.Decimal, status ListingStatus) (*Property, error) {
	p, err := NewProperty(title, location, propertyType, price, status)
	if err != nil {
		return nil, err
	}
	p.SetOwner(ownerID)
	p.ApprovalStatus = ApprovalPending
	p.IsPublished = false
	return p, nil
}

// Approve publishes a pending submission
func (p *Property) Approve() error {
	if p.ApprovalStatus == ApprovalApproved {
		return shared.NewDomainError("INVALID_STATE", "Property is already approved")
	}
	p.ApprovalStatus = ApprovalApproved
	p.IsPublished = true
	p.Touch()
	return nil
}

// Reject marks a pending submission as rejected
func (p *Property) Reject() error {
	if p.ApprovalStatus == ApprovalRejected {
		return shared.NewDomainError("INVALID_STATE", "Property is already rejected")
	}
	p.ApprovalStatus = ApprovalRejected
	p.IsPublished = false
	p.Touch()
	return nil
}

// Publish makes an approved listing visible on the site
func (p *Property) Publish() error {
	if p.ApprovalStatus != ApprovalApproved {
		return shared.NewDomainError("INVALID_STATE", "Only approved properties can be published")
	}
	p.IsPublished = true
	p.Touch()
	return nil
}

// Unpublish hides a listing without deleting it
func (p *Property) Unpublish() {
	p.IsPublished = false
	p.Touch()
}

// MarkSold closes out a sale listing
func (p *Property) MarkSold() error {
	if p.Status != StatusForSale {
		return shared.NewDomainError("INVALID_STATE", "Only a for_sale listing can be marked sold")
	}
	p.Status = StatusSold
	p.Touch()
	return nil
}

// MarkRented closes out a rental listing
func (p *Property) MarkRented() error {
	if p.Status != StatusForRent {
		return shared.NewDomainError("INVALID_STATE", "Only a for_rent listing can be marked rented")
	}
	p.Status = StatusRented
	p.Touch()
	return nil
}

// SetFeatured toggles the featured flag used by the home page carousel
func (p *Property) SetFeatured(featured bool) {
	p.IsFeatured = featured
	p.Touch()
}

// HasAmenity reports whether the property lists the given amenity
func (p *Property) HasAmenity(name string) bool {
	for _, a := range p.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
