package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, CatalogPostgres, cfg.Catalog.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Catalog.CacheTTL)
	assert.False(t, cfg.Catalog.CacheEnabled)
	assert.Equal(t, 100000, cfg.Planner.MaxCombinations)
	assert.Equal(t, 200*time.Millisecond, cfg.Planner.LookupRetryDelay)
	assert.Equal(t, 10, cfg.Planner.DefaultLimit)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CATALOG_DRIVER", "SQLite")
	v.Set("CATALOG_CACHE_TTL", "bogus")
	v.Set("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	v.Set("PLANNER_LOOKUP_RETRY_DELAY", "1s")

	cfg := fromViper(v)

	assert.Equal(t, CatalogSQLite, cfg.Catalog.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Second, cfg.Planner.LookupRetryDelay)
}

func TestLoadReadsEnvironment(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PORT", "9191")
	t.Setenv("CATALOG_DRIVER", "csv")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, CatalogCSV, cfg.Catalog.Driver)
}
