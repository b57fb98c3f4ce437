package cache

import (
	"context"

	"github.com/evergreen/backend/internal/domain/content"
	"go.uber.org/zap"
)

// CachedSettingRepository decorates a SettingRepository with a
// read-through cache. Site settings are read on nearly every page
// render and written almost never, so the whole table is cached as
// one snapshot. Cache failures degrade to database reads.
type CachedSettingRepository struct {
	inner  content.SettingRepository
	cache  SettingCache
	logger *zap.Logger
}

var _ content.SettingRepository = (*CachedSettingRepository)(nil)

// NewCachedSettingRepository wraps inner with the given cache
func NewCachedSettingRepository(inner content.SettingRepository, settingCache SettingCache, logger *zap.Logger) *CachedSettingRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSettingRepository{
		inner:  inner,
		cache:  settingCache,
		logger: logger,
	}
}

// GetAll returns all settings, serving from the cache when fresh
func (r *CachedSettingRepository) GetAll(ctx context.Context) ([]content.SiteSetting, error) {
	cached, found, err := r.cache.GetAll(ctx)
	if err != nil {
		r.logger.Warn("Settings cache read failed, falling back to database", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	settings, err := r.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetAll(ctx, settings); err != nil {
		r.logger.Warn("Settings cache write failed", zap.Error(err))
	}

	return settings, nil
}

// Get returns a single setting. Reads go through the cached snapshot
// so a warm cache serves individual lookups without touching the
// database. A key absent from the snapshot is delegated to the inner
// repository so not-found semantics stay identical.
func (r *CachedSettingRepository) Get(ctx context.Context, key string) (*content.SiteSetting, error) {
	cached, found, err := r.cache.GetAll(ctx)
	if err != nil {
		r.logger.Warn("Settings cache read failed, falling back to database", zap.Error(err))
	}
	if found {
		for i := range cached {
			if cached[i].Key == key {
				setting := cached[i]
				return &setting, nil
			}
		}
	}

	return r.inner.Get(ctx, key)
}

// Set writes through to the database and drops the cached snapshot
func (r *CachedSettingRepository) Set(ctx context.Context, key, value string) error {
	if err := r.inner.Set(ctx, key, value); err != nil {
		return err
	}

	if err := r.cache.Invalidate(ctx); err != nil {
		r.logger.Warn("Settings cache invalidation failed", zap.Error(err))
	}

	return nil
}
