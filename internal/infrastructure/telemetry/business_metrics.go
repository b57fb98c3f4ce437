// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the marketplace.
// It tracks registrations, listing activity, and inquiry volume.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	userRegistrationTotal *Counter
	listingSubmittedTotal *Counter
	listingPublishedTotal *Counter
	listingValueTotal     *Counter
	inquiryTotal          *Counter

	// Gauge metrics (point-in-time values)
	listingsByStatus *Gauge
	newInquiries     *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data providers for periodic collection
	listingProvider ListingMetricsProvider
	inquiryProvider InquiryMetricsProvider
}

// ListingMetricsProvider provides listing data for periodic metrics
// collection. This interface allows the telemetry layer to query listing
// state without depending on the listing domain directly.
type ListingMetricsProvider interface {
	// GetListingCountByStatus returns the number of published listings per status
	GetListingCountByStatus(ctx context.Context) (map[string]int64, error)
}

// InquiryMetricsProvider provides inquiry data for periodic metrics collection.
type InquiryMetricsProvider interface {
	// GetNewInquiryCount returns the number of inquiries awaiting a reply
	GetNewInquiryCount(ctx context.Context) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	ListingProvider ListingMetricsProvider
	InquiryProvider InquiryMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:           cfg.Meter,
		logger:          logger,
		stopChan:        make(chan struct{}),
		listingProvider: cfg.ListingProvider,
		inquiryProvider: cfg.InquiryProvider,
	}

	// Initialize counter metrics
	var err error

	bm.userRegistrationTotal, err = NewCounter(
		cfg.Meter,
		"evergreen_user_registration_total",
		"Total number of accounts registered",
		"{accounts}",
	)
	if err != nil {
		return nil, err
	}

	// Listing metrics
	bm.listingSubmittedTotal, err = NewCounter(
		cfg.Meter,
		"evergreen_listing_submitted_total",
		"Total number of property listings submitted for review",
		"{listings}",
	)
	if err != nil {
		return nil, err
	}

	bm.listingPublishedTotal, err = NewCounter(
		cfg.Meter,
		"evergreen_listing_published_total",
		"Total number of property listings published",
		"{listings}",
	)
	if err != nil {
		return nil, err
	}

	bm.listingValueTotal, err = NewCounter(
		cfg.Meter,
		"evergreen_listing_value_total",
		"Total asking price of published listings in cents",
		"{cents}",
	)
	if err != nil {
		return nil, err
	}

	// Inquiry metrics
	bm.inquiryTotal, err = NewCounter(
		cfg.Meter,
		"evergreen_inquiry_total",
		"Total number of inquiries submitted",
		"{inquiries}",
	)
	if err != nil {
		return nil, err
	}

	// Gauge metrics
	bm.listingsByStatus, err = NewGauge(
		cfg.Meter,
		"evergreen_listings",
		"Current number of published listings per status",
		"{listings}",
	)
	if err != nil {
		return nil, err
	}

	bm.newInquiries, err = NewGauge(
		cfg.Meter,
		"evergreen_inquiries_new",
		"Number of inquiries awaiting a reply",
		"{inquiries}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Registration Metrics
// =============================================================================

// RecordUserRegistration records a successful account registration.
// This should be called from the application layer when a user signs up.
func (bm *BusinessMetrics) RecordUserRegistration(ctx context.Context) {
	bm.userRegistrationTotal.Inc(ctx)
}

// =============================================================================
// Listing Metrics
// =============================================================================

// RecordListingSubmitted records an owner listing submission.
func (bm *BusinessMetrics) RecordListingSubmitted(ctx context.Context, propertyType string) {
	bm.listingSubmittedTotal.Inc(ctx,
		AttrPropertyType.String(propertyType),
	)
}

// RecordListingPublished records a listing going live, together with its
// asking price. Price is converted to the smallest currency unit (cents).
func (bm *BusinessMetrics) RecordListingPublished(ctx context.Context, propertyType string, price decimal.Decimal) {
	bm.listingPublishedTotal.Inc(ctx,
		AttrPropertyType.String(propertyType),
	)

	priceCents := price.Mul(decimal.NewFromInt(100)).IntPart()
	bm.listingValueTotal.Add(ctx, priceCents,
		AttrPropertyType.String(propertyType),
	)
}

// =============================================================================
// Inquiry Metrics
// =============================================================================

// RecordInquiry records a visitor inquiry submission.
func (bm *BusinessMetrics) RecordInquiry(ctx context.Context, subject string) {
	bm.inquiryTotal.Inc(ctx,
		AttrInquirySubject.String(subject),
	)
}

// RecordListingCount records the current listing count for a status.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordListingCount(ctx context.Context, status string, count int64) {
	bm.listingsByStatus.Record(ctx, count,
		AttrListingStatus.String(status),
	)
}

// RecordNewInquiryCount records the number of unanswered inquiries.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordNewInquiryCount(ctx context.Context, count int64) {
	bm.newInquiries.Record(ctx, count)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects listing and inquiry gauges every interval (default: 5 minutes).
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectGaugeMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectGaugeMetrics(ctx)
		}
	}
}

// collectGaugeMetrics refreshes the listing and inquiry gauges.
func (bm *BusinessMetrics) collectGaugeMetrics(ctx context.Context) {
	if bm.listingProvider != nil {
		countByStatus, err := bm.listingProvider.GetListingCountByStatus(ctx)
		if err != nil {
			bm.logger.Warn("Failed to get listing counts for metrics collection", zap.Error(err))
		} else {
			for status, count := range countByStatus {
				bm.RecordListingCount(ctx, status, count)
			}
		}
	}

	if bm.inquiryProvider != nil {
		newCount, err := bm.inquiryProvider.GetNewInquiryCount(ctx)
		if err != nil {
			bm.logger.Warn("Failed to get new inquiry count for metrics collection", zap.Error(err))
		} else {
			bm.RecordNewInquiryCount(ctx, newCount)
		}
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
