package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingapp "github.com/evergreen/backend/internal/application/listing"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/interfaces/http/dto"
)

// fakePropertyRepository is a map-backed repository for handler tests

type fakePropertyRepository struct {
	properties map[uuid.UUID]*listing.Property
	returnErr  error
}

func newFakePropertyRepository() *fakePropertyRepository {
	return &fakePropertyRepository{properties: make(map[uuid.UUID]*listing.Property)}
}

func (f *fakePropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Property, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	if p, ok := f.properties[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakePropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]listing.Property, error) {
	var result []listing.Property
	for _, p := range f.properties {
		result = append(result, *p)
	}
	return result, f.returnErr
}

func (f *fakePropertyRepository) Save(ctx context.Context, p *listing.Property) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.properties[id]; !ok {
		return shared.ErrNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakePropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return int64(len(f.properties)), f.returnErr
}

func (f *fakePropertyRepository) FindBySlug(ctx context.Context, slug string) (*listing.Property, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	for _, p := range f.properties {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakePropertyRepository) FindPublished(ctx context.Context, filter shared.Filter) (shared.Paginated[listing.Property], error) {
	var items []listing.Property
	for _, p := range f.properties {
		if !p.IsPublished {
			continue
		}
		if status, ok := filter.Filters["status"].(string); ok && string(p.Status) != status {
			continue
		}
		items = append(items, *p)
	}
	return shared.NewPaginated(items, int64(len(items)), 1, len(items)+1), f.returnErr
}

func (f *fakePropertyRepository) FindFeatured(ctx context.Context, limit int) ([]listing.Property, error) {
	var items []listing.Property
	for _, p := range f.properties {
		if p.IsPublished && p.IsFeatured && len(items) < limit {
			items = append(items, *p)
		}
	}
	return items, f.returnErr
}

func (f *fakePropertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]listing.Property, error) {
	var items []listing.Property
	for _, p := range f.properties {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			items = append(items, *p)
		}
	}
	return items, f.returnErr
}

func (f *fakePropertyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]listing.Property, error) {
	var items []listing.Property
	for _, id := range ids {
		if p, ok := f.properties[id]; ok {
			items = append(items, *p)
		}
	}
	return items, f.returnErr
}

func (f *fakePropertyRepository) CountByStatus(ctx context.Context) (map[listing.ListingStatus]int64, error) {
	counts := make(map[listing.ListingStatus]int64)
	for _, p := range f.properties {
		if p.IsPublished {
			counts[p.Status]++
		}
	}
	return counts, f.returnErr
}

func newPropertyTestRouter(repo *fakePropertyRepository, userID uuid.UUID) *gin.Engine {
	service := listingapp.NewPropertyService(repo)
	h := NewPropertyHandler(service)

	router := gin.New()
	if userID != uuid.Nil {
		router.Use(func(c *gin.Context) {
			setJWTContext(c, userID)
			c.Next()
		})
	}
	router.GET("/api/v1/listing/properties", h.Browse)
	router.GET("/api/v1/listing/properties/search", h.Search)
	router.GET("/api/v1/listing/properties/featured", h.Featured)
	router.GET("/api/v1/listing/properties/mine", h.MyListings)
	router.POST("/api/v1/listing/properties/submit", h.Submit)
	router.GET("/api/v1/listing/properties/:slug", h.GetBySlug)
	router.POST("/api/v1/admin/properties", h.Create)
	router.POST("/api/v1/admin/properties/:id/approve", h.Approve)
	return router
}

func publishedProperty(t *testing.T, title string, status listing.ListingStatus) *listing.Property {
	t.Helper()
	p, err := listing.NewProperty(title, "Colombo", "house", decimal.NewFromInt(25000000), status)
	require.NoError(t, err)
	return p
}

func TestPropertyHandlerBrowse(t *testing.T) {
	repo := newFakePropertyRepository()
	sale := publishedProperty(t, "City House", listing.StatusForSale)
	rent := publishedProperty(t, "Beach Flat", listing.StatusForRent)
	repo.properties[sale.ID] = sale
	repo.properties[rent.ID] = rent

	router := newPropertyTestRouter(repo, uuid.Nil)

	t.Run("returns only matching status", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/listing/properties?status=for_rent", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(1), resp.Meta.Total)
	})

	t.Run("search route shares browse semantics", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/listing/properties/search?locations=Colombo", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(2), resp.Meta.Total)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/listing/properties?status=bananas", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPropertyHandlerGetBySlug(t *testing.T) {
	repo := newFakePropertyRepository()
	p := publishedProperty(t, "Hilltop Bungalow", listing.StatusForSale)
	repo.properties[p.ID] = p

	router := newPropertyTestRouter(repo, uuid.Nil)

	t.Run("returns the listing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/listing/properties/"+p.Slug, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hilltop Bungalow")
	})

	t.Run("404 for unknown slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/listing/properties/no-such-listing", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestPropertyHandlerSubmit(t *testing.T) {
	ownerID := uuid.New()

	body := map[string]any{
		"title":         "My Garden Plot",
		"price":         "9500000",
		"location":      "Galle",
		"property_type": "land",
		"status":        "for_sale",
		"contact_name":  "Nimal Perera",
		"contact_email": "nimal@example.com",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	t.Run("creates a pending unpublished listing", func(t *testing.T) {
		repo := newFakePropertyRepository()
		router := newPropertyTestRouter(repo, ownerID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/listing/properties/submit", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, repo.properties, 1)
		for _, p := range repo.properties {
			assert.False(t, p.IsPublished)
			assert.Equal(t, listing.ApprovalPending, p.ApprovalStatus)
			require.NotNil(t, p.OwnerID)
			assert.Equal(t, ownerID, *p.OwnerID)
		}
	})

	t.Run("rejects anonymous submission", func(t *testing.T) {
		repo := newFakePropertyRepository()
		router := newPropertyTestRouter(repo, uuid.Nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/listing/properties/submit", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, repo.properties)
	})

	t.Run("rejects missing contact email", func(t *testing.T) {
		repo := newFakePropertyRepository()
		router := newPropertyTestRouter(repo, ownerID)

		bad := map[string]any{
			"title":         "No Contact",
			"price":         "100000",
			"location":      "Kandy",
			"property_type": "house",
			"status":        "for_sale",
			"contact_name":  "Someone",
		}
		badPayload, err := json.Marshal(bad)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/listing/properties/submit", bytes.NewReader(badPayload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.properties)
	})
}

func TestPropertyHandlerApprove(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakePropertyRepository()

	submission, err := listing.NewSubmission(ownerID, "Pending Villa", "Matara", "villa", decimal.NewFromInt(30000000), listing.StatusForSale)
	require.NoError(t, err)
	repo.properties[submission.ID] = submission

	router := newPropertyTestRouter(repo, ownerID)

	t.Run("publishes the submission", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/admin/properties/"+submission.ID.String()+"/approve", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, repo.properties[submission.ID].IsPublished)
	})

	t.Run("400 for malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/admin/properties/not-a-uuid/approve", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPropertyHandlerMyListings(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakePropertyRepository()

	mine, err := listing.NewSubmission(ownerID, "Own Plot", "Jaffna", "land", decimal.NewFromInt(5000000), listing.StatusForSale)
	require.NoError(t, err)
	other := publishedProperty(t, "Someone Elses", listing.StatusForSale)
	repo.properties[mine.ID] = mine
	repo.properties[other.ID] = other

	router := newPropertyTestRouter(repo, ownerID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/listing/properties/mine", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Own Plot")
	assert.NotContains(t, w.Body.String(), "Someone Elses")
}
