package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergreen/backend/internal/domain/inquiry"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/persistence/models"
)

func TestGormInquiryRepository_FindByStatus(t *testing.T) {
	db := setupTestDB(t, &models.InquiryModel{})
	repo := NewGormInquiryRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		inq, err := inquiry.NewInquiry("Visitor", "visitor@example.com", "", "Is this available?")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, inq))
	}
	replied, err := inquiry.NewInquiry("Answered", "done@example.com", "", "Old question")
	require.NoError(t, err)
	replied.MarkRead()
	require.NoError(t, replied.MarkReplied())
	require.NoError(t, repo.Save(ctx, replied))

	t.Run("pages inquiries in a status", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 2

		page, err := repo.FindByStatus(ctx, inquiry.StatusNew, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Len(t, page.Items, 2)
	})

	t.Run("counts unread inquiries", func(t *testing.T) {
		count, err := repo.CountNew(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestGormInquiryRepository_FindByProperty(t *testing.T) {
	db := setupTestDB(t, &models.InquiryModel{})
	repo := NewGormInquiryRepository(db)
	ctx := context.Background()

	propertyID := uuid.New()
	propertyInquiry, err := inquiry.NewPropertyInquiry("Buyer", "buyer@example.com", "0771234567", "Still for sale?", propertyID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, propertyInquiry))

	general, err := inquiry.NewInquiry("Walk In", "walkin@example.com", "", "General question")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, general))

	inquiries, err := repo.FindByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, inquiries, 1)
	assert.Equal(t, "Buyer", inquiries[0].Name)
	require.NotNil(t, inquiries[0].PropertyID)
	assert.Equal(t, propertyID, *inquiries[0].PropertyID)
}

func TestGormInquiryRepository_StatusRoundTrip(t *testing.T) {
	db := setupTestDB(t, &models.InquiryModel{})
	repo := NewGormInquiryRepository(db)
	ctx := context.Background()

	inq, err := inquiry.NewInquiry("Visitor", "visitor@example.com", "", "Hello")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, inq))

	inq.MarkRead()
	require.NoError(t, repo.Save(ctx, inq))

	found, err := repo.FindByID(ctx, inq.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry.StatusRead, found.Status)

	require.NoError(t, repo.Delete(ctx, inq.ID))
	_, err = repo.FindByID(ctx, inq.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
