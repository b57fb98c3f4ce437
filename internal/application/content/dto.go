package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/content"
)

// =============================================================================
// Blog DTOs
// =============================================================================

// CreateBlogPostRequest represents an admin request to create a post
type CreateBlogPostRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=300"`
	Excerpt    string `json:"excerpt" binding:"max=1000"`
	Content    string `json:"content" binding:"required"`
	ImageURL   string `json:"image_url" binding:"max=500"`
	AuthorName string `json:"author_name" binding:"max=200"`
	Category   string `json:"category" binding:"max=100"`
	Publish    bool   `json:"publish"`
}

// UpdateBlogPostRequest represents an admin request to edit a post
type UpdateBlogPostRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=300"`
	Excerpt    *string `json:"excerpt" binding:"omitempty,max=1000"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url" binding:"omitempty,max=500"`
	AuthorName *string `json:"author_name" binding:"omitempty,max=200"`
	Category   *string `json:"category" binding:"omitempty,max=100"`
	Published  *bool   `json:"published"`
}

// BlogListFilter represents blog list queries
type BlogListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

// BlogPostResponse represents a blog post in API responses
type BlogPostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	ImageURL    string     `json:"image_url"`
	AuthorName  string     `json:"author_name"`
	Category    string     `json:"category"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToBlogPostResponse converts a domain blog post to the response shape
func ToBlogPostResponse(p *content.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		ImageURL:    p.ImageURL,
		AuthorName:  p.AuthorName,
		Category:    p.Category,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// =============================================================================
// Site content DTOs
// =============================================================================

// TestimonialRequest creates or replaces a testimonial
type TestimonialRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Role      string `json:"role" binding:"max=200"`
	AvatarURL string `json:"avatar_url" binding:"max=500"`
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// TestimonialResponse represents a testimonial in API responses
type TestimonialResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
}

// FAQRequest creates or replaces a FAQ entry
type FAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	Category  string `json:"category" binding:"max=100"`
	SortOrder int    `json:"sort_order"`
}

// FAQResponse represents a FAQ entry in API responses
type FAQResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sort_order"`
}

// ServiceRequest creates or replaces a service offering
type ServiceRequest struct {
	Title       string   `json:"title" binding:"required,max=300"`
	Description string   `json:"description"`
	Icon        string   `json:"icon" binding:"max=100"`
	Features    []string `json:"features"`
	PriceFrom   string   `json:"price_from" binding:"max=100"`
	SortOrder   int      `json:"sort_order"`
	IsActive    *bool    `json:"is_active"`
}

// ServiceResponse represents a service offering in API responses
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	PriceFrom   string    `json:"price_from"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
}

// HeroRequest replaces the home page banner
type HeroRequest struct {
	Title              string `json:"title" binding:"required,max=300"`
	Subtitle           string `json:"subtitle"`
	BackgroundImageURL string `json:"background_image_url" binding:"max=500"`
}

// HeroResponse represents the home page banner
type HeroResponse struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	BackgroundImageURL string `json:"background_image_url"`
}

// SettingsResponse is the flattened site settings map
type SettingsResponse map[string]string

// =============================================================================
// Media DTOs
// =============================================================================

// UploadRequest asks for a presigned upload slot
type UploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=300"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	Folder      string `json:"folder" binding:"max=200"`
	SizeByte    int64  `json:"size_byte" binding:"required,min=1"`
}

// UploadResponse carries the presigned URL and the pending asset record
type UploadResponse struct {
	AssetID   uuid.UUID `json:"asset_id"`
	UploadURL string    `json:"upload_url"`
	FileURL   string    `json:"file_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MediaAssetResponse represents a media library entry
type MediaAssetResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	Folder    string    `json:"folder"`
	SizeByte  int64     `json:"size_byte"`
	CreatedAt time.Time `json:"created_at"`
}

// ToHeroResponse converts the hero banner to the response shape
func ToHeroResponse(h *content.HeroContent) HeroResponse {
	return HeroResponse{
		Title:              h.Title,
		Subtitle:           h.Subtitle,
		BackgroundImageURL: h.BackgroundImageURL,
	}
}

func ToTestimonialResponse(t *content.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		AvatarURL: t.AvatarURL,
		Content:   t.Content,
		Rating:    t.Rating,
		IsActive:  t.IsActive,
		SortOrder: t.SortOrder,
	}
}

func ToFAQResponse(f *content.FAQ) FAQResponse {
	return FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		SortOrder: f.SortOrder,
	}
}

func ToServiceResponse(s *content.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		Icon:        s.Icon,
		Features:    s.Features,
		PriceFrom:   s.PriceFrom,
		SortOrder:   s.SortOrder,
		IsActive:    s.IsActive,
	}
}

func ToMediaAssetResponse(a *content.MediaAsset) MediaAssetResponse {
	return MediaAssetResponse{
		ID:        a.ID,
		Name:      a.Name,
		FileURL:   a.FileURL,
		FileType:  a.FileType,
		Folder:    a.Folder,
		SizeByte:  a.SizeByte,
		CreatedAt: a.CreatedAt,
	}
}
