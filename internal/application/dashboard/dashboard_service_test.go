package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/identity"
	"github.com/evergreen/backend/internal/domain/inquiry"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
)

type mockPropertyRepo struct{ mock.Mock }

func (m *mockPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*listing.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindAll(ctx context.Context, filter shared.Filter) ([]listing.Property, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]listing.Property), args.Error(1)
}

func (m *mockPropertyRepo) Save(ctx context.Context, property *listing.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *mockPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPropertyRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyRepo) FindBySlug(ctx context.Context, slug string) (*listing.Property, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[listing.Property], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[listing.Property]), args.Error(1)
}

func (m *mockPropertyRepo) FindFeatured(ctx context.Context, limit int) ([]listing.Property, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]listing.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]listing.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]listing.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]listing.Property, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]listing.Property), args.Error(1)
}

func (m *mockPropertyRepo) CountByStatus(ctx context.Context) (map[listing.ListingStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[listing.ListingStatus]int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockInquiryRepo struct{ mock.Mock }

func (m *mockInquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiry.Inquiry), args.Error(1)
}

func (m *mockInquiryRepo) FindAll(ctx context.Context, filter shared.Filter) ([]inquiry.Inquiry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inquiry.Inquiry), args.Error(1)
}

func (m *mockInquiryRepo) Save(ctx context.Context, inq *inquiry.Inquiry) error {
	return m.Called(ctx, inq).Error(0)
}

func (m *mockInquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInquiryRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInquiryRepo) FindByStatus(ctx context.Context, status inquiry.InquiryStatus, filter shared.Filter) (shared.Paginated[inquiry.Inquiry], error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).(shared.Paginated[inquiry.Inquiry]), args.Error(1)
}

func (m *mockInquiryRepo) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]inquiry.Inquiry, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]inquiry.Inquiry), args.Error(1)
}

func (m *mockInquiryRepo) CountNew(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockBlogRepo struct{ mock.Mock }

func (m *mockBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *mockBlogRepo) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.BlogPost), args.Error(1)
}

func (m *mockBlogRepo) Save(ctx context.Context, post *content.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBlogRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBlogRepo) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogPost), args.Error(1)
}

func (m *mockBlogRepo) FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[content.BlogPost], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[content.BlogPost]), args.Error(1)
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates all counters", func(t *testing.T) {
		properties := new(mockPropertyRepo)
		users := new(mockUserRepo)
		inquiries := new(mockInquiryRepo)
		posts := new(mockBlogRepo)
		service := NewDashboardService(properties, users, inquiries, posts)

		properties.On("CountByStatus", mock.Anything).Return(map[listing.ListingStatus]int64{
			listing.StatusForSale: 30,
			listing.StatusForRent: 12,
		}, nil)
		properties.On("Count", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return len(f.Filters) == 0
		})).Return(int64(42), nil)
		properties.On("Count", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			v, ok := f.Filters["is_published"]
			return ok && v == true
		})).Return(int64(38), nil)
		properties.On("Count", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			v, ok := f.Filters["approval_status"]
			return ok && v == string(listing.ApprovalPending)
		})).Return(int64(4), nil)
		users.On("Count", mock.Anything, mock.Anything).Return(int64(120), nil)
		inquiries.On("CountNew", mock.Anything).Return(int64(7), nil)
		posts.On("Count", mock.Anything, mock.Anything).Return(int64(15), nil)

		stats, err := service.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(42), stats.TotalProperties)
		assert.Equal(t, int64(38), stats.PublishedProperties)
		assert.Equal(t, int64(4), stats.PendingSubmissions)
		assert.Equal(t, int64(30), stats.ForSale)
		assert.Equal(t, int64(12), stats.ForRent)
		assert.Equal(t, int64(120), stats.TotalUsers)
		assert.Equal(t, int64(7), stats.NewInquiries)
		assert.Equal(t, int64(15), stats.BlogPosts)
	})

	t.Run("any failing counter fails the whole call", func(t *testing.T) {
		properties := new(mockPropertyRepo)
		users := new(mockUserRepo)
		inquiries := new(mockInquiryRepo)
		posts := new(mockBlogRepo)
		service := NewDashboardService(properties, users, inquiries, posts)

		properties.On("CountByStatus", mock.Anything).Return(map[listing.ListingStatus]int64{}, nil)
		properties.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		users.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		posts.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		inquiries.On("CountNew", mock.Anything).Return(int64(0), errors.New("connection reset"))

		_, err := service.Stats(ctx)

		require.Error(t, err)
	})
}
