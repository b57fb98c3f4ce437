package models

import (
	"time"

	"github.com/evergreen/backend/internal/domain/content"
)

// BlogPostModel is the persistence model for blog posts.
type BlogPostModel struct {
	AggregateModel
	Title       string `gorm:"type:varchar(300);not null"`
	Slug        string `gorm:"type:varchar(300);not null;uniqueIndex"`
	Excerpt     string `gorm:"type:text"`
	Content     string `gorm:"type:text;not null"`
	ImageURL    string `gorm:"type:varchar(500)"`
	AuthorName  string `gorm:"type:varchar(200)"`
	Category    string `gorm:"type:varchar(100);index"`
	Published   bool   `gorm:"not null;default:false;index"`
	PublishedAt *time.Time
}

// TableName returns the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts the persistence model to a domain BlogPost entity.
func (m *BlogPostModel) ToDomain() *content.BlogPost {
	return &content.BlogPost{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Slug:              m.Slug,
		Excerpt:           m.Excerpt,
		Content:           m.Content,
		ImageURL:          m.ImageURL,
		AuthorName:        m.AuthorName,
		Category:          m.Category,
		Published:         m.Published,
		PublishedAt:       m.PublishedAt,
	}
}

// FromDomain populates the persistence model from a domain BlogPost entity.
func (m *BlogPostModel) FromDomain(p *content.BlogPost) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Title = p.Title
	m.Slug = p.Slug
	m.Excerpt = p.Excerpt
	m.Content = p.Content
	m.ImageURL = p.ImageURL
	m.AuthorName = p.AuthorName
	m.Category = p.Category
	m.Published = p.Published
	m.PublishedAt = p.PublishedAt
}

// TestimonialModel is the persistence model for testimonials.
type TestimonialModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null"`
	Role      string `gorm:"type:varchar(200)"`
	AvatarURL string `gorm:"type:varchar(500)"`
	Content   string `gorm:"type:text"`
	Rating    int    `gorm:"not null;default:5"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// ToDomain converts the persistence model to a domain Testimonial entity.
func (m *TestimonialModel) ToDomain() *content.Testimonial {
	return &content.Testimonial{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Role:       m.Role,
		AvatarURL:  m.AvatarURL,
		Content:    m.Content,
		Rating:     m.Rating,
		IsActive:   m.IsActive,
		SortOrder:  m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain Testimonial entity.
func (m *TestimonialModel) FromDomain(t *content.Testimonial) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Role = t.Role
	m.AvatarURL = t.AvatarURL
	m.Content = t.Content
	m.Rating = t.Rating
	m.IsActive = t.IsActive
	m.SortOrder = t.SortOrder
}

// FAQModel is the persistence model for FAQ entries.
type FAQModel struct {
	BaseModel
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	Category  string `gorm:"type:varchar(100);index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (FAQModel) TableName() string {
	return "faqs"
}

// ToDomain converts the persistence model to a domain FAQ entity.
func (m *FAQModel) ToDomain() *content.FAQ {
	return &content.FAQ{
		BaseEntity: m.BaseModel.ToDomain(),
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		SortOrder:  m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain FAQ entity.
func (m *FAQModel) FromDomain(f *content.FAQ) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.Question = f.Question
	m.Answer = f.Answer
	m.Category = f.Category
	m.SortOrder = f.SortOrder
}

// ServiceModel is the persistence model for service offerings.
type ServiceModel struct {
	BaseModel
	Title       string `gorm:"type:varchar(300);not null"`
	Slug        string `gorm:"type:varchar(300);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"type:varchar(100)"`
	Features    string `gorm:"type:jsonb"`
	PriceFrom   string `gorm:"type:varchar(100)"`
	SortOrder   int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service entity.
func (m *ServiceModel) ToDomain() *content.Service {
	return &content.Service{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Icon:        m.Icon,
		Features:    decodeStrings(m.Features),
		PriceFrom:   m.PriceFrom,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Service entity.
func (m *ServiceModel) FromDomain(s *content.Service) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Title = s.Title
	m.Slug = s.Slug
	m.Description = s.Description
	m.Icon = s.Icon
	m.Features = encodeStrings(s.Features)
	m.PriceFrom = s.PriceFrom
	m.SortOrder = s.SortOrder
	m.IsActive = s.IsActive
}

// MediaAssetModel is the persistence model for media library entries.
type MediaAssetModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(300);not null"`
	FileURL  string `gorm:"type:varchar(500);not null"`
	FileType string `gorm:"type:varchar(100)"`
	Folder   string `gorm:"type:varchar(200);index"`
	SizeByte int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (MediaAssetModel) TableName() string {
	return "media_library"
}

// ToDomain converts the persistence model to a domain MediaAsset entity.
func (m *MediaAssetModel) ToDomain() *content.MediaAsset {
	return &content.MediaAsset{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		FileURL:    m.FileURL,
		FileType:   m.FileType,
		Folder:     m.Folder,
		SizeByte:   m.SizeByte,
	}
}

// FromDomain populates the persistence model from a domain MediaAsset entity.
func (m *MediaAssetModel) FromDomain(a *content.MediaAsset) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Name = a.Name
	m.FileURL = a.FileURL
	m.FileType = a.FileType
	m.Folder = a.Folder
	m.SizeByte = a.SizeByte
}

// HeroContentModel is the persistence model for the home page hero banner.
// The table holds a single row that is updated in place.
type HeroContentModel struct {
	BaseModel
	Title              string `gorm:"type:varchar(300)"`
	Subtitle           string `gorm:"type:text"`
	BackgroundImageURL string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (HeroContentModel) TableName() string {
	return "hero_content"
}

// ToDomain converts the persistence model to a domain HeroContent entity.
func (m *HeroContentModel) ToDomain() *content.HeroContent {
	return &content.HeroContent{
		BaseEntity:         m.BaseModel.ToDomain(),
		Title:              m.Title,
		Subtitle:           m.Subtitle,
		BackgroundImageURL: m.BackgroundImageURL,
	}
}

// FromDomain populates the persistence model from a domain HeroContent entity.
func (m *HeroContentModel) FromDomain(h *content.HeroContent) {
	m.FromDomainBaseEntity(h.BaseEntity)
	m.Title = h.Title
	m.Subtitle = h.Subtitle
	m.BackgroundImageURL = h.BackgroundImageURL
}

// SiteSettingModel is the persistence model for site settings rows.
type SiteSettingModel struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SiteSettingModel) TableName() string {
	return "site_settings"
}

// ToDomain converts the persistence model to a domain SiteSetting entity.
func (m *SiteSettingModel) ToDomain() *content.SiteSetting {
	return &content.SiteSetting{
		BaseEntity: m.BaseModel.ToDomain(),
		Key:        m.Key,
		Value:      m.Value,
	}
}

// FromDomain populates the persistence model from a domain SiteSetting entity.
func (m *SiteSettingModel) FromDomain(s *content.SiteSetting) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Key = s.Key
	m.Value = s.Value
}
