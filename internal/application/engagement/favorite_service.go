package engagement

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	applisting "github.com/evergreen/backend/internal/application/listing"
	"github.com/evergreen/backend/internal/domain/engagement"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
)

// FavoriteService handles saving and unsaving properties for signed-in users
type FavoriteService struct {
	favoriteRepo engagement.FavoriteRepository
	propertyRepo listing.PropertyRepository

	mu    sync.Mutex
	locks map[string]*pairLock
}

// pairLock serializes toggles for one (user, property) pair. Entries are
// reference counted and removed from the map once the last holder leaves,
// so the map only holds pairs with a toggle in flight.
type pairLock struct {
	mu   sync.Mutex
	refs int
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(favoriteRepo engagement.FavoriteRepository, propertyRepo listing.PropertyRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		locks:        make(map[string]*pairLock),
	}
}

// Toggle flips the saved state for a (user, property) pair and reports the
// resulting state. Concurrent toggles for the same pair are serialized so
// each request lands on a consistent before state.
func (s *FavoriteService) Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	unlock := s.lockPair(userID, propertyID)
	defer unlock()

	exists, err := s.favoriteRepo.Exists(ctx, userID, propertyID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.Remove(ctx, userID, propertyID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return false, nil
	}

	// Only existing properties can be saved
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		return false, err
	}

	favorite, err := engagement.NewFavorite(userID, propertyID)
	if err != nil {
		return false, err
	}
	if err := s.favoriteRepo.Save(ctx, favorite); err != nil {
		// A concurrent request already created the edge
		if errors.Is(err, shared.ErrAlreadyExists) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// List returns the saved properties for a user in most recently saved order
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]applisting.PropertyListResponse, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []applisting.PropertyListResponse{}, nil
	}

	ids := make([]uuid.UUID, len(favorites))
	for i, favorite := range favorites {
		ids[i] = favorite.PropertyID
	}

	properties, err := s.propertyRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Preserve the favorite order. Properties deleted since saving are
	// silently dropped.
	byID := make(map[uuid.UUID]*listing.Property, len(properties))
	for i := range properties {
		byID[properties[i].ID] = &properties[i]
	}
	responses := make([]applisting.PropertyListResponse, 0, len(ids))
	for _, id := range ids {
		if property, ok := byID[id]; ok {
			responses = append(responses, applisting.ToPropertyListResponse(property))
		}
	}
	return responses, nil
}

// SavedIDs returns the property IDs the user has saved
func (s *FavoriteService) SavedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(favorites))
	for i, favorite := range favorites {
		ids[i] = favorite.PropertyID
	}
	return ids, nil
}

// IsSaved reports whether the user has saved the property
func (s *FavoriteService) IsSaved(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	return s.favoriteRepo.Exists(ctx, userID, propertyID)
}

// CountForProperty reports how many users saved a property
func (s *FavoriteService) CountForProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return s.favoriteRepo.CountByProperty(ctx, propertyID)
}

func (s *FavoriteService) lockPair(userID, propertyID uuid.UUID) func() {
	key := userID.String() + ":" + propertyID.String()

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &pairLock{}
		s.locks[key] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()
		s.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
