package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/domain/identity"
	"github.com/evergreen/backend/internal/domain/inquiry"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
)

// Stats is the admin dashboard summary
type Stats struct {
	TotalProperties     int64 `json:"total_properties"`
	PublishedProperties int64 `json:"published_properties"`
	PendingSubmissions  int64 `json:"pending_submissions"`
	ForSale             int64 `json:"for_sale"`
	ForRent             int64 `json:"for_rent"`
	TotalUsers          int64 `json:"total_users"`
	NewInquiries        int64 `json:"new_inquiries"`
	BlogPosts           int64 `json:"blog_posts"`
}

// DashboardService aggregates counts for the admin dashboard
type DashboardService struct {
	propertyRepo listing.PropertyRepository
	userRepo     identity.UserRepository
	inquiryRepo  inquiry.Repository
	blogRepo     content.BlogPostRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	propertyRepo listing.PropertyRepository,
	userRepo identity.UserRepository,
	inquiryRepo inquiry.Repository,
	blogRepo content.BlogPostRepository,
) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		inquiryRepo:  inquiryRepo,
		blogRepo:     blogRepo,
	}
}

// Stats gathers the dashboard counters. The queries are independent so
// they run concurrently.
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		byStatus, err := s.propertyRepo.CountByStatus(gctx)
		if err != nil {
			return err
		}
		stats.ForSale = byStatus[listing.StatusForSale]
		stats.ForRent = byStatus[listing.StatusForRent]
		return nil
	})
	g.Go(func() error {
		total, err := s.propertyRepo.Count(gctx, shared.Filter{})
		if err != nil {
			return err
		}
		stats.TotalProperties = total
		return nil
	})
	g.Go(func() error {
		published, err := s.propertyRepo.Count(gctx, shared.Filter{
			Filters: map[string]interface{}{"is_published": true},
		})
		if err != nil {
			return err
		}
		stats.PublishedProperties = published
		return nil
	})
	g.Go(func() error {
		pending, err := s.propertyRepo.Count(gctx, shared.Filter{
			Filters: map[string]interface{}{"approval_status": string(listing.ApprovalPending)},
		})
		if err != nil {
			return err
		}
		stats.PendingSubmissions = pending
		return nil
	})
	g.Go(func() error {
		users, err := s.userRepo.Count(gctx, shared.Filter{})
		if err != nil {
			return err
		}
		stats.TotalUsers = users
		return nil
	})
	g.Go(func() error {
		newInquiries, err := s.inquiryRepo.CountNew(gctx)
		if err != nil {
			return err
		}
		stats.NewInquiries = newInquiries
		return nil
	})
	g.Go(func() error {
		posts, err := s.blogRepo.Count(gctx, shared.Filter{})
		if err != nil {
			return err
		}
		stats.BlogPosts = posts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
