package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evergreen/backend/internal/domain/content"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DefaultSettingTTL is how long cached site settings stay fresh.
// Settings change rarely (an admin editing contact details), so a
// minute of staleness is acceptable.
const DefaultSettingTTL = time.Minute

// SettingCache stores the full site settings snapshot. Implementations
// must treat a cache miss as (nil, false, nil), not as an error.
type SettingCache interface {
	GetAll(ctx context.Context) ([]content.SiteSetting, bool, error)
	SetAll(ctx context.Context, settings []content.SiteSetting) error
	Invalidate(ctx context.Context) error
	Close() error
}

// RedisSettingCache implements SettingCache using Redis
type RedisSettingCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	key        string
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisSettingCacheOption is a functional option for configuring the cache
type RedisSettingCacheOption func(*RedisSettingCache)

// WithSettingTTL overrides the default cache TTL
func WithSettingTTL(ttl time.Duration) RedisSettingCacheOption {
	return func(c *RedisSettingCache) {
		c.ttl = ttl
	}
}

// WithSettingLogger sets the logger for the cache
func WithSettingLogger(logger *zap.Logger) RedisSettingCacheOption {
	return func(c *RedisSettingCache) {
		c.logger = logger
	}
}

// NewRedisSettingCache creates a new Redis-based settings cache
func NewRedisSettingCache(cfg RedisConfig, opts ...RedisSettingCacheOption) (*RedisSettingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisSettingCache{
		client:     client,
		ownsClient: true, // We created this client, so we own it
		key:        "site:settings",
		ttl:        DefaultSettingTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisSettingCacheWithClient creates a cache with an existing Redis client
// Note: The caller retains ownership of the client and is responsible for closing it
func NewRedisSettingCacheWithClient(client *redis.Client, opts ...RedisSettingCacheOption) *RedisSettingCache {
	cache := &RedisSettingCache{
		client:     client,
		ownsClient: false, // Client is shared, don't close it
		key:        "site:settings",
		ttl:        DefaultSettingTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// GetAll returns the cached settings snapshot, or found=false on a miss
func (c *RedisSettingCache) GetAll(ctx context.Context) ([]content.SiteSetting, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read settings from cache: %w", err)
	}

	var settings []content.SiteSetting
	if err := json.Unmarshal(data, &settings); err != nil {
		// A corrupt entry behaves like a miss so the caller falls
		// through to the database and rewrites it
		c.logger.Warn("Discarding corrupt settings cache entry", zap.Error(err))
		_ = c.client.Del(ctx, c.key).Err()
		return nil, false, nil
	}

	return settings, true, nil
}

// SetAll stores the settings snapshot with the configured TTL
func (c *RedisSettingCache) SetAll(ctx context.Context, settings []content.SiteSetting) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write settings to cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached snapshot
func (c *RedisSettingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}
	return nil
}

// Close closes the Redis client if this cache owns it
func (c *RedisSettingCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}
