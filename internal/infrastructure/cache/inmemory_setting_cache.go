package cache

import (
	"context"
	"sync"
	"time"

	"github.com/evergreen/backend/internal/domain/content"
)

// InMemorySettingCache implements SettingCache with a process-local
// snapshot. Used when Redis is not configured, and in tests.
type InMemorySettingCache struct {
	mu        sync.RWMutex
	settings  []content.SiteSetting
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// InMemorySettingCacheOption is a functional option for the in-memory cache
type InMemorySettingCacheOption func(*InMemorySettingCache)

// WithInMemorySettingTTL overrides the default cache TTL
func WithInMemorySettingTTL(ttl time.Duration) InMemorySettingCacheOption {
	return func(c *InMemorySettingCache) {
		c.ttl = ttl
	}
}

// WithInMemorySettingClock injects a clock, for tests
func WithInMemorySettingClock(now func() time.Time) InMemorySettingCacheOption {
	return func(c *InMemorySettingCache) {
		c.now = now
	}
}

// NewInMemorySettingCache creates a new in-memory settings cache
func NewInMemorySettingCache(opts ...InMemorySettingCacheOption) *InMemorySettingCache {
	cache := &InMemorySettingCache{
		ttl: DefaultSettingTTL,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// GetAll returns the cached snapshot, or found=false when empty or expired
func (c *InMemorySettingCache) GetAll(_ context.Context) ([]content.SiteSetting, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.settings == nil || c.now().After(c.expiresAt) {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the cached slice
	snapshot := make([]content.SiteSetting, len(c.settings))
	copy(snapshot, c.settings)
	return snapshot, true, nil
}

// SetAll stores the settings snapshot
func (c *InMemorySettingCache) SetAll(_ context.Context, settings []content.SiteSetting) error {
	snapshot := make([]content.SiteSetting, len(settings))
	copy(snapshot, settings)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = snapshot
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

// Invalidate drops the cached snapshot
func (c *InMemorySettingCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = nil
	return nil
}

// Close is a no-op for the in-memory cache
func (c *InMemorySettingCache) Close() error {
	return nil
}
