// Package bootstrap assembles the catalog stack shared by the server and the
// CLI from configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner/internal/handler"
	"github.com/noah-isme/course-planner/internal/repository"
	"github.com/noah-isme/course-planner/internal/service"
	"github.com/noah-isme/course-planner/pkg/cache"
	"github.com/noah-isme/course-planner/pkg/config"
	"github.com/noah-isme/course-planner/pkg/database"
)

// Catalog is an opened section catalog plus the resources behind it.
type Catalog struct {
	Lookup service.SectionLookup
	// Cache is nil unless the Redis cache is enabled.
	Cache  *service.CachedCatalog
	Checks []handler.ReadyCheck

	closers []func() error
}

// OpenCatalog connects the configured catalog driver and, when enabled,
// wraps it in the Redis read-through cache.
func OpenCatalog(cfg *config.Config, metrics *service.MetricsService, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{}

	switch cfg.Catalog.Driver {
	case config.CatalogPostgres, config.CatalogSQLite:
		db, err := openSQL(cfg)
		if err != nil {
			return nil, fmt.Errorf("open %s catalog: %w", cfg.Catalog.Driver, err)
		}
		c.closers = append(c.closers, db.Close)
		c.Checks = append(c.Checks, handler.ReadyCheck{Name: "catalog", Check: db.PingContext})
		c.Lookup = repository.NewCatalogRepository(db, metrics)
	case config.CatalogCSV:
		path := cfg.Catalog.CSVPath
		c.Lookup = repository.NewCSVCatalogRepository(path)
		c.Checks = append(c.Checks, handler.ReadyCheck{Name: "catalog", Check: func(context.Context) error {
			_, err := os.Stat(path)
			return err
		}})
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}

	if cfg.Catalog.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		repo := repository.NewCacheRepository(client, logger)
		c.closers = append(c.closers, repo.Close)
		c.Checks = append(c.Checks, handler.ReadyCheck{Name: "redis", Check: repo.Ping})
		c.Cache = service.NewCachedCatalog(c.Lookup, repo, metrics, cfg.Catalog.CacheTTL, logger)
		c.Lookup = c.Cache
	}

	logger.Info("catalog opened",
		zap.String("driver", cfg.Catalog.Driver),
		zap.Bool("cache", cfg.Catalog.CacheEnabled),
	)
	return c, nil
}

func openSQL(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Catalog.Driver == config.CatalogSQLite {
		return database.NewSQLite(cfg.Catalog.SQLitePath)
	}
	return database.NewPostgres(cfg.Database)
}

// Close releases every resource in reverse opening order.
func (c *Catalog) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// PlannerConfig maps planner settings onto the service configuration.
func PlannerConfig(cfg config.PlannerConfig) service.PlannerConfig {
	return service.PlannerConfig{
		MaxCombinations:    cfg.MaxCombinations,
		LookupWorkers:      cfg.LookupWorkers,
		LookupRetries:      cfg.LookupRetries,
		LookupRetryDelay:   cfg.LookupRetryDelay,
		EnumerationWorkers: cfg.EnumerationWorkers,
		DefaultLimit:       cfg.DefaultLimit,
	}
}
