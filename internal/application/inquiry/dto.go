package inquiry

import (
	"time"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/inquiry"
)

// SubmitInquiryRequest is the public contact form payload. PropertyID is
// set when the form was submitted from a property detail page.
type SubmitInquiryRequest struct {
	Name       string     `json:"name" binding:"required,max=200"`
	Email      string     `json:"email" binding:"required,email,max=320"`
	Phone      string     `json:"phone" binding:"max=50"`
	Message    string     `json:"message" binding:"required,max=5000"`
	PropertyID *uuid.UUID `json:"property_id"`
}

// ListFilter represents admin inquiry queue queries
type ListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	Status     string `form:"status" binding:"omitempty,oneof=new read replied archived"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	Search     string `form:"search"`
}

// InquiryResponse represents an inquiry in API responses
type InquiryResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToInquiryResponse converts a domain inquiry to the response shape
func ToInquiryResponse(i *inquiry.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Message:    i.Message,
		PropertyID: i.PropertyID,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// ToInquiryResponses converts a slice of domain inquiries
func ToInquiryResponses(items []inquiry.Inquiry) []InquiryResponse {
	responses := make([]InquiryResponse, len(items))
	for i := range items {
		responses[i] = ToInquiryResponse(&items[i])
	}
	return responses
}
