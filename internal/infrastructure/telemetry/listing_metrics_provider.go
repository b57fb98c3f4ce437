// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"gorm.io/gorm"
)

// GormListingMetricsProvider implements ListingMetricsProvider using GORM.
// It queries the properties table directly for aggregated metrics.
type GormListingMetricsProvider struct {
	db *gorm.DB
}

// NewGormListingMetricsProvider creates a new GormListingMetricsProvider.
func NewGormListingMetricsProvider(db *gorm.DB) *GormListingMetricsProvider {
	return &GormListingMetricsProvider{db: db}
}

// GetListingCountByStatus returns the number of published listings per status.
func (p *GormListingMetricsProvider) GetListingCountByStatus(ctx context.Context) (map[string]int64, error) {
	type result struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("properties").
		Select("status, COUNT(*) as count").
		Where("is_published = true").
		Group("status").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[string]int64, len(results))
	for _, r := range results {
		m[r.Status] = r.Count
	}

	return m, nil
}

// GormInquiryMetricsProvider implements InquiryMetricsProvider using GORM.
type GormInquiryMetricsProvider struct {
	db *gorm.DB
}

// NewGormInquiryMetricsProvider creates a new GormInquiryMetricsProvider.
func NewGormInquiryMetricsProvider(db *gorm.DB) *GormInquiryMetricsProvider {
	return &GormInquiryMetricsProvider{db: db}
}

// GetNewInquiryCount returns the number of inquiries awaiting a reply.
func (p *GormInquiryMetricsProvider) GetNewInquiryCount(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("inquiries").
		Where("status = ?", "new").
		Count(&count).Error

	return count, err
}
