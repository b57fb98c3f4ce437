package listing

import (
	"context"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/shared"
)

// PropertyRepository defines the persistence interface for properties
type PropertyRepository interface {
	shared.Repository[Property]
	FindBySlug(ctx context.Context, slug string) (*Property, error)
	FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[Property], error)
	FindFeatured(ctx context.Context, limit int) ([]Property, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Property, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Property, error)
	CountByStatus(ctx context.Context) (map[ListingStatus]int64, error)
}
