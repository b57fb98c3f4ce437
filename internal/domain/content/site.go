package content

import (
	"context"
	"strings"

	"github.com/evergreen/backend/internal/domain/shared"
)

// Testimonial is a customer quote shown on the home page
type Testimonial struct {
	shared.BaseEntity
	Name      string
	Role      string
	AvatarURL string
	Content   string
	Rating    int
	IsActive  bool
	SortOrder int
}

// NewTestimonial creates an active testimonial
func NewTestimonial(name, role, text string, rating int) (*Testimonial, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_TESTIMONIAL", "Name is required")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_TESTIMONIAL", "Rating must be between 1 and 5")
	}
	return &Testimonial{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Role:       role,
		Content:    text,
		Rating:     rating,
		IsActive:   true,
	}, nil
}

// FAQ is a question and answer shown on the help page
type FAQ struct {
	shared.BaseEntity
	Question  string
	Answer    string
	Category  string
	SortOrder int
}

// NewFAQ creates a FAQ entry
func NewFAQ(question, answer, category string) (*FAQ, error) {
	if strings.TrimSpace(question) == "" {
		return nil, shared.NewDomainError("INVALID_FAQ", "Question is required")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, shared.NewDomainError("INVALID_FAQ", "Answer is required")
	}
	return &FAQ{
		BaseEntity: shared.NewBaseEntity(),
		Question:   question,
		Answer:     answer,
		Category:   category,
	}, nil
}

// Service is an offering listed on the services page
type Service struct {
	shared.BaseEntity
	Title       string
	Slug        string
	Description string
	Icon        string
	Features    []string
	PriceFrom   string
	SortOrder   int
	IsActive    bool
}

// MediaAsset is an uploaded file tracked in the media library
type MediaAsset struct {
	shared.BaseEntity
	Name     string
	FileURL  string
	FileType string
	Folder   string
	SizeByte int64
}

// HeroContent is the single editable banner on the home page
type HeroContent struct {
	shared.BaseEntity
	Title              string
	Subtitle           string
	BackgroundImageURL string
}

// SiteSetting is a key/value row in the site settings table
type SiteSetting struct {
	shared.BaseEntity
	Key   string
	Value string
}

// Well-known site setting keys
const (
	SettingSiteName     = "site_name"
	SettingContactEmail = "contact_email"
	SettingContactPhone = "contact_phone"
	SettingAddress      = "address"
)

// TestimonialRepository defines the persistence interface for testimonials
type TestimonialRepository interface {
	shared.Repository[Testimonial]
	FindActive(ctx context.Context) ([]Testimonial, error)
}

// FAQRepository defines the persistence interface for FAQ entries
type FAQRepository interface {
	shared.Repository[FAQ]
	FindByCategory(ctx context.Context, category string) ([]FAQ, error)
}

// ServiceRepository defines the persistence interface for service offerings
type ServiceRepository interface {
	shared.Repository[Service]
	FindBySlug(ctx context.Context, slug string) (*Service, error)
	FindActive(ctx context.Context) ([]Service, error)
}

// MediaRepository defines the persistence interface for media assets
type MediaRepository interface {
	shared.Repository[MediaAsset]
	FindByFolder(ctx context.Context, folder string) ([]MediaAsset, error)
}

// HeroRepository stores the single hero banner row
type HeroRepository interface {
	Get(ctx context.Context) (*HeroContent, error)
	Save(ctx context.Context, hero *HeroContent) error
}

// SettingRepository stores site settings as key/value rows
type SettingRepository interface {
	GetAll(ctx context.Context) ([]SiteSetting, error)
	Get(ctx context.Context, key string) (*SiteSetting, error)
	Set(ctx context.Context, key, value string) error
}
