package inquiry

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/shared"
)

// InquiryStatus tracks back-office handling of an inquiry
type InquiryStatus string

const (
	StatusNew      InquiryStatus = "new"
	StatusRead     InquiryStatus = "read"
	StatusReplied  InquiryStatus = "replied"
	StatusArchived InquiryStatus = "archived"
)

// Inquiry is a contact message from a site visitor. PropertyID is set when
// the message was sent from a property detail page, nil for general contact.
type Inquiry struct {
	shared.BaseAggregateRoot
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID *uuid.UUID
	Status     InquiryStatus
}

// NewInquiry creates a general inquiry
func NewInquiry(name, email, phone, message string) (*Inquiry, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INQUIRY", "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_INQUIRY", "Email is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_INQUIRY", "Message is required")
	}
	return &Inquiry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Phone:             strings.TrimSpace(phone),
		Message:           message,
		Status:            StatusNew,
	}, nil
}

// NewPropertyInquiry creates an inquiry tied to a specific property
func NewPropertyInquiry(name, email, phone, message string, propertyID uuid.UUID) (*Inquiry, error) {
	inq, err := NewInquiry(name, email, phone, message)
	if err != nil {
		return nil, err
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INQUIRY", "Property ID is required")
	}
	inq.PropertyID = &propertyID
	return inq, nil
}

// MarkRead transitions a new inquiry to read
func (i *Inquiry) MarkRead() {
	if i.Status == StatusNew {
		i.Status = StatusRead
		i.Touch()
	}
}

// MarkReplied records that the inquiry was answered
func (i *Inquiry) MarkReplied() error {
	if i.Status == StatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot reply to an archived inquiry")
	}
	i.Status = StatusReplied
	i.Touch()
	return nil
}

// Archive removes the inquiry from the active queue
func (i *Inquiry) Archive() {
	i.Status = StatusArchived
	i.Touch()
}

// Repository defines the persistence interface for inquiries
type Repository interface {
	shared.Repository[Inquiry]
	FindByStatus(ctx context.Context, status InquiryStatus, filter shared.Filter) (shared.Paginated[Inquiry], error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Inquiry, error)
	CountNew(ctx context.Context) (int64, error)
}
