package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
)

// DefaultBlogPageSize is used when the caller does not ask for a page size
const DefaultBlogPageSize = 9

// BlogService manages blog posts
type BlogService struct {
	blogRepo content.BlogPostRepository
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo content.BlogPostRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// ListPublished returns published posts for the public blog
func (s *BlogService) ListPublished(ctx context.Context, filter BlogListFilter) (shared.Paginated[content.BlogPost], error) {
	f := shared.DefaultFilter()
	f.PageSize = DefaultBlogPageSize
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	return s.blogRepo.FindPublished(ctx, f)
}

// ListAll returns every post, drafts included, for the admin console
func (s *BlogService) ListAll(ctx context.Context, filter BlogListFilter) (shared.Paginated[content.BlogPost], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	items, err := s.blogRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[content.BlogPost]{}, err
	}
	total, err := s.blogRepo.Count(ctx, f)
	if err != nil {
		return shared.Paginated[content.BlogPost]{}, err
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// GetBySlug returns a published post for public reading
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, shared.ErrNotFound
	}
	return post, nil
}

// Get returns a post by ID regardless of publication state
func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	return s.blogRepo.FindByID(ctx, id)
}

// Create creates a blog post, optionally publishing it immediately
func (s *BlogService) Create(ctx context.Context, req CreateBlogPostRequest) (*content.BlogPost, error) {
	post, err := content.NewBlogPost(req.Title, req.Content, req.AuthorName)
	if err != nil {
		return nil, err
	}
	post.Excerpt = req.Excerpt
	post.ImageURL = req.ImageURL
	post.Category = req.Category
	if err := s.ensureUniqueSlug(ctx, post); err != nil {
		return nil, err
	}
	if req.Publish {
		post.Publish()
	}
	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial edit to a blog post
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req UpdateBlogPostRequest) (*content.BlogPost, error) {
	post, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != post.Title {
		if err := post.Rename(*req.Title); err != nil {
			return nil, err
		}
		if err := s.ensureUniqueSlug(ctx, post); err != nil {
			return nil, err
		}
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}
	if req.AuthorName != nil {
		post.AuthorName = *req.AuthorName
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Published != nil {
		if *req.Published {
			post.Publish()
		} else {
			post.Unpublish()
		}
	}
	post.Touch()

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a blog post
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.blogRepo.Delete(ctx, id)
}

// Count returns the total number of posts, drafts included
func (s *BlogService) Count(ctx context.Context) (int64, error) {
	return s.blogRepo.Count(ctx, shared.Filter{})
}

// ensureUniqueSlug suffixes the slug with a short ID when another post
// already owns it
func (s *BlogService) ensureUniqueSlug(ctx context.Context, post *content.BlogPost) error {
	existing, err := s.blogRepo.FindBySlug(ctx, post.Slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == post.ID {
		return nil
	}
	post.Slug = fmt.Sprintf("%s-%s", listing.Slugify(post.Title), post.ID.String()[:8])
	return nil
}
