package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/evergreen/backend/internal/domain/listing"
)

// PropertyModel is the persistence model for the Property domain entity.
type PropertyModel struct {
	OwnedAggregateModel
	Title          string                 `gorm:"type:varchar(300);not null"`
	Slug           string                 `gorm:"type:varchar(300);not null;uniqueIndex"`
	Description    string                 `gorm:"type:text"`
	Price          decimal.Decimal        `gorm:"type:decimal(18,2);not null;default:0;index"`
	Location       string                 `gorm:"type:varchar(300);index"`
	Address        string                 `gorm:"type:text"`
	PropertyType   string                 `gorm:"type:varchar(100);index"`
	Status         listing.ListingStatus  `gorm:"type:varchar(20);not null;default:'for_sale';index"`
	ApprovalStatus listing.ApprovalStatus `gorm:"type:varchar(20);not null;default:'approved';index"`
	Bedrooms       int                    `gorm:"not null;default:0"`
	Bathrooms      int                    `gorm:"not null;default:0"`
	AreaSqft       int                    `gorm:"not null;default:0"`
	LandArea       *decimal.Decimal       `gorm:"type:decimal(18,2)"`
	YearBuilt      *int
	Amenities      string `gorm:"type:jsonb"`
	ImageURLs      string `gorm:"type:jsonb"`
	IsFeatured     bool   `gorm:"not null;default:false;index"`
	IsPublished    bool   `gorm:"not null;default:false;index"`
	ContactName    string `gorm:"type:varchar(200)"`
	ContactEmail   string `gorm:"type:varchar(200)"`
	ContactPhone   string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property entity.
func (m *PropertyModel) ToDomain() *listing.Property {
	return &listing.Property{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Title:              m.Title,
		Slug:               m.Slug,
		Description:        m.Description,
		Price:              m.Price,
		Location:           m.Location,
		Address:            m.Address,
		PropertyType:       m.PropertyType,
		Status:             m.Status,
		ApprovalStatus:     m.ApprovalStatus,
		Bedrooms:           m.Bedrooms,
		Bathrooms:          m.Bathrooms,
		AreaSqft:           m.AreaSqft,
		LandArea:           m.LandArea,
		YearBuilt:          m.YearBuilt,
		Amenities:          decodeStrings(m.Amenities),
		ImageURLs:          decodeStrings(m.ImageURLs),
		IsFeatured:         m.IsFeatured,
		IsPublished:        m.IsPublished,
		ContactName:        m.ContactName,
		ContactEmail:       m.ContactEmail,
		ContactPhone:       m.ContactPhone,
	}
}

// FromDomain populates the persistence model from a domain Property entity.
func (m *PropertyModel) FromDomain(p *listing.Property) {
	m.FromDomainOwnedAggregateRoot(p.OwnedAggregateRoot)
	m.Title = p.Title
	m.Slug = p.Slug
	m.Description = p.Description
	m.Price = p.Price
	m.Location = p.Location
	m.Address = p.Address
	m.PropertyType = p.PropertyType
	m.Status = p.Status
	m.ApprovalStatus = p.ApprovalStatus
	m.Bedrooms = p.Bedrooms
	m.Bathrooms = p.Bathrooms
	m.AreaSqft = p.AreaSqft
	m.LandArea = p.LandArea
	m.YearBuilt = p.YearBuilt
	m.Amenities = encodeStrings(p.Amenities)
	m.ImageURLs = encodeStrings(p.ImageURLs)
	m.IsFeatured = p.IsFeatured
	m.IsPublished = p.IsPublished
	m.ContactName = p.ContactName
	m.ContactEmail = p.ContactEmail
	m.ContactPhone = p.ContactPhone
}

// encodeStrings serializes a string slice to its JSON column representation.
// nil and empty slices are stored as "[]" so the column is never NULL.
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// decodeStrings parses the JSON column representation of a string slice.
// Malformed data decodes to an empty slice rather than failing the read.
func decodeStrings(data string) []string {
	if data == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return []string{}
	}
	return values
}
