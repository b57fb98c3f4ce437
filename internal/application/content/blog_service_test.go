package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/shared"
)

// MockBlogPostRepository is a mock implementation of content.BlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Save(ctx context.Context, post *content.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[content.BlogPost], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[content.BlogPost]), args.Error(1)
}

func publishedPost(t *testing.T, title string) *content.BlogPost {
	t.Helper()
	post, err := content.NewBlogPost(title, "Body text", "Amara Silva")
	require.NoError(t, err)
	post.Publish()
	return post
}

func TestBlogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates draft with unique slug", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		repo.On("FindBySlug", ctx, "market-update").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.MatchedBy(func(p *content.BlogPost) bool {
			return p.Slug == "market-update" && !p.Published
		})).Return(nil)

		post, err := service.Create(ctx, CreateBlogPostRequest{
			Title:      "Market Update",
			Content:    "Body text",
			AuthorName: "Amara Silva",
		})

		require.NoError(t, err)
		assert.False(t, post.Published)
		assert.Nil(t, post.PublishedAt)
		repo.AssertExpectations(t)
	})

	t.Run("publish on create stamps published_at", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		repo.On("FindBySlug", ctx, mock.Anything).Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		post, err := service.Create(ctx, CreateBlogPostRequest{
			Title:   "Launch Post",
			Content: "Body text",
			Publish: true,
		})

		require.NoError(t, err)
		assert.True(t, post.Published)
		require.NotNil(t, post.PublishedAt)
	})

	t.Run("slug collision gets ID suffix", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		existing := publishedPost(t, "Market Update")
		repo.On("FindBySlug", ctx, "market-update").Return(existing, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		post, err := service.Create(ctx, CreateBlogPostRequest{
			Title:   "Market Update",
			Content: "Different body",
		})

		require.NoError(t, err)
		assert.NotEqual(t, existing.Slug, post.Slug)
		assert.Contains(t, post.Slug, "market-update-")
	})

	t.Run("empty title rejected", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		_, err := service.Create(ctx, CreateBlogPostRequest{Title: "  ", Content: "Body"})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestBlogService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns published post", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		post := publishedPost(t, "Visible Post")
		repo.On("FindBySlug", ctx, "visible-post").Return(post, nil)

		got, err := service.GetBySlug(ctx, "visible-post")

		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
	})

	t.Run("draft is hidden from public readers", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		draft, err := content.NewBlogPost("Draft Post", "Body", "Author")
		require.NoError(t, err)
		repo.On("FindBySlug", ctx, "draft-post").Return(draft, nil)

		_, err = service.GetBySlug(ctx, "draft-post")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBlogService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rename regenerates slug", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		post := publishedPost(t, "Old Title")
		repo.On("FindByID", ctx, post.ID).Return(post, nil)
		repo.On("FindBySlug", ctx, "new-title").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		newTitle := "New Title"
		updated, err := service.Update(ctx, post.ID, UpdateBlogPostRequest{Title: &newTitle})

		require.NoError(t, err)
		assert.Equal(t, "new-title", updated.Slug)
	})

	t.Run("unpublish clears public visibility", func(t *testing.T) {
		repo := new(MockBlogPostRepository)
		service := NewBlogService(repo)

		post := publishedPost(t, "Take Down")
		repo.On("FindByID", ctx, post.ID).Return(post, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		published := false
		updated, err := service.Update(ctx, post.ID, UpdateBlogPostRequest{Published: &published})

		require.NoError(t, err)
		assert.False(t, updated.Published)
	})
}

func TestBlogService_ListPublished(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBlogPostRepository)
	service := NewBlogService(repo)

	post := publishedPost(t, "Only Post")
	repo.On("FindPublished", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == DefaultBlogPageSize && f.Filters["category"] == "guides"
	})).Return(shared.NewPaginated([]content.BlogPost{*post}, 10, 2, DefaultBlogPageSize), nil)

	page, err := service.ListPublished(ctx, BlogListFilter{Page: 2, Category: "guides"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), page.Total)
	assert.Len(t, page.Items, 1)
	repo.AssertExpectations(t)
}
