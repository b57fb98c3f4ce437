package content

import (
	"context"
	"strings"
	"time"

	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/domain/listing"
)

// BlogPost is an article shown on the public blog
type BlogPost struct {
	shared.BaseAggregateRoot
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    string
	AuthorName  string
	Category    string
	Published   bool
	PublishedAt *time.Time
}

// NewBlogPost creates a draft blog post
func NewBlogPost(title, content, authorName string) (*BlogPost, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_POST", "Post title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewDomainError("INVALID_POST", "Post content is required")
	}
	return &BlogPost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Slug:              listing.Slugify(title),
		Content:           content,
		AuthorName:        authorName,
	}, nil
}

// Publish makes the post visible on the public blog
func (p *BlogPost) Publish() {
	if !p.Published {
		now := time.Now()
		p.Published = true
		p.PublishedAt = &now
		p.Touch()
	}
}

// Unpublish returns the post to draft state
func (p *BlogPost) Unpublish() {
	p.Published = false
	p.Touch()
}

// Rename updates the title and regenerates the slug
func (p *BlogPost) Rename(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_POST", "Post title is required")
	}
	p.Title = title
	p.Slug = listing.Slugify(title)
	p.Touch()
	return nil
}

// BlogPostRepository defines the persistence interface for blog posts
type BlogPostRepository interface {
	shared.Repository[BlogPost]
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[BlogPost], error)
}
