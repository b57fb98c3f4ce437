package models

import (
	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/inquiry"
)

// InquiryModel is the persistence model for visitor inquiries.
// PropertyID is NULL for general contact messages.
type InquiryModel struct {
	AggregateModel
	Name       string                `gorm:"type:varchar(200);not null"`
	Email      string                `gorm:"type:varchar(200);not null;index"`
	Phone      string                `gorm:"type:varchar(50)"`
	Message    string                `gorm:"type:text;not null"`
	PropertyID *uuid.UUID            `gorm:"type:uuid;index"`
	Status     inquiry.InquiryStatus `gorm:"type:varchar(20);not null;default:'new';index"`
}

// TableName returns the table name for GORM
func (InquiryModel) TableName() string {
	return "inquiries"
}

// ToDomain converts the persistence model to a domain Inquiry entity.
func (m *InquiryModel) ToDomain() *inquiry.Inquiry {
	return &inquiry.Inquiry{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		Message:           m.Message,
		PropertyID:        m.PropertyID,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Inquiry entity.
func (m *InquiryModel) FromDomain(i *inquiry.Inquiry) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.Name = i.Name
	m.Email = i.Email
	m.Phone = i.Phone
	m.Message = i.Message
	m.PropertyID = i.PropertyID
	m.Status = i.Status
}
