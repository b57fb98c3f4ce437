package inquiry

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evergreen/backend/internal/domain/inquiry"
	"github.com/evergreen/backend/internal/domain/listing"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/telemetry"
)

// InquiryService handles contact form submissions and the admin queue
type InquiryService struct {
	inquiryRepo     inquiry.Repository
	propertyRepo    listing.PropertyRepository
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(inquiryRepo inquiry.Repository, propertyRepo listing.PropertyRepository, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *InquiryService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Submit records a contact form submission. Property inquiries must point
// at an existing published property.
func (s *InquiryService) Submit(ctx context.Context, req SubmitInquiryRequest) (*inquiry.Inquiry, error) {
	var inq *inquiry.Inquiry
	var err error

	if req.PropertyID != nil {
		property, ferr := s.propertyRepo.FindByID(ctx, *req.PropertyID)
		if ferr != nil {
			if errors.Is(ferr, shared.ErrNotFound) {
				return nil, shared.NewDomainError("PROPERTY_NOT_FOUND", "The property no longer exists")
			}
			return nil, ferr
		}
		if !property.IsPublished {
			return nil, shared.NewDomainError("PROPERTY_NOT_FOUND", "The property no longer exists")
		}
		inq, err = inquiry.NewPropertyInquiry(req.Name, req.Email, req.Phone, req.Message, *req.PropertyID)
	} else {
		inq, err = inquiry.NewInquiry(req.Name, req.Email, req.Phone, req.Message)
	}
	if err != nil {
		return nil, err
	}

	if err := s.inquiryRepo.Save(ctx, inq); err != nil {
		return nil, err
	}
	s.logger.Info("inquiry received",
		zap.String("inquiry_id", inq.ID.String()),
		zap.Bool("property_inquiry", inq.PropertyID != nil))

	if s.businessMetrics != nil {
		subject := "general"
		if inq.PropertyID != nil {
			subject = "property"
		}
		s.businessMetrics.RecordInquiry(ctx, subject)
	}
	return inq, nil
}

// List returns the admin inquiry queue, newest first
func (s *InquiryService) List(ctx context.Context, filter ListFilter) (shared.Paginated[inquiry.Inquiry], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.PropertyID != "" {
		f.Filters["property_id"] = filter.PropertyID
	}

	if filter.Status != "" {
		return s.inquiryRepo.FindByStatus(ctx, inquiry.InquiryStatus(filter.Status), f)
	}

	items, err := s.inquiryRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[inquiry.Inquiry]{}, err
	}
	total, err := s.inquiryRepo.Count(ctx, f)
	if err != nil {
		return shared.Paginated[inquiry.Inquiry]{}, err
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// Get returns one inquiry and marks it read as a side effect, since an
// admin opening the detail view has seen it
func (s *InquiryService) Get(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	inq, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq.Status == inquiry.StatusNew {
		inq.MarkRead()
		if err := s.inquiryRepo.Save(ctx, inq); err != nil {
			return nil, err
		}
	}
	return inq, nil
}

// MarkReplied records that the inquiry was answered
func (s *InquiryService) MarkReplied(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	inq, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := inq.MarkReplied(); err != nil {
		return nil, err
	}
	if err := s.inquiryRepo.Save(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// Archive removes the inquiry from the active queue
func (s *InquiryService) Archive(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	inq, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inq.Archive()
	if err := s.inquiryRepo.Save(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// Delete permanently removes an inquiry
func (s *InquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inquiryRepo.Delete(ctx, id)
}

// ForProperty returns every inquiry sent about one property
func (s *InquiryService) ForProperty(ctx context.Context, propertyID uuid.UUID) ([]inquiry.Inquiry, error) {
	return s.inquiryRepo.FindByProperty(ctx, propertyID)
}

// CountNew returns the unread inquiry count for the admin badge
func (s *InquiryService) CountNew(ctx context.Context) (int64, error) {
	return s.inquiryRepo.CountNew(ctx)
}
