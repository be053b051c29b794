package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-planner/internal/models"
	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

// CatalogCacheKeyPrefix namespaces cached lookups in Redis.
const CatalogCacheKeyPrefix = "catalog:sections:"

// CacheRepository abstracts persistence for cached lookups.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

// CachedCatalog is a read-through cache in front of a SectionLookup. Cache
// failures never fail a lookup; they fall through to the wrapped catalog.
type CachedCatalog struct {
	next    SectionLookup
	repo    CacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCachedCatalog wraps next. A non-positive ttl defaults to ten minutes.
func NewCachedCatalog(next SectionLookup, repo CacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCatalog{next: next, repo: repo, metrics: metrics, ttl: ttl, logger: logger}
}

// LookupSections serves pattern from cache when present, otherwise asks the
// wrapped catalog and stores the answer, empty answers included.
func (c *CachedCatalog) LookupSections(ctx context.Context, pattern string) ([]models.CourseRecord, error) {
	key := CatalogCacheKeyPrefix + pattern

	start := time.Now()
	var cached []models.CourseRecord
	err := c.repo.Get(ctx, key, &cached)
	c.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, appErrors.ErrCacheMiss) {
		c.logger.Warn("catalog cache get failed", zap.String("key", key), zap.Error(err))
	}

	records, err := c.next.LookupSections(ctx, pattern)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	if err := c.repo.Set(ctx, key, records, c.ttl); err != nil {
		c.logger.Warn("catalog cache set failed", zap.String("key", key), zap.Error(err))
	}
	c.metrics.ObserveCacheWrite(time.Since(start))
	return records, nil
}

// Purge drops every cached lookup.
func (c *CachedCatalog) Purge(ctx context.Context) (int, error) {
	deleted, err := c.repo.DeleteByPattern(ctx, CatalogCacheKeyPrefix+"*")
	if err != nil {
		c.logger.Warn("catalog cache purge failed", zap.Error(err))
		return deleted, err
	}
	return deleted, nil
}
