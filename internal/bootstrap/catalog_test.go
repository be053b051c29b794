package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner/internal/repository"
	"github.com/noah-isme/course-planner/pkg/config"
)

func TestOpenCatalogCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,course,course_title,section,schedule_num,units,seats_available,seats_total,meeting_id,meeting_type,days,hours,location,instructor\n"), 0o600))

	cfg := &config.Config{Catalog: config.CatalogConfig{Driver: config.CatalogCSV, CSVPath: path}}
	catalog, err := OpenCatalog(cfg, nil, nil)
	require.NoError(t, err)
	defer catalog.Close()

	assert.IsType(t, &repository.CSVCatalogRepository{}, catalog.Lookup)
	assert.Nil(t, catalog.Cache)
	require.Len(t, catalog.Checks, 1)
	assert.NoError(t, catalog.Checks[0].Check(context.Background()))
}

func TestOpenCatalogSQLite(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{
		Driver:     config.CatalogSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "classes.db"),
	}}
	catalog, err := OpenCatalog(cfg, nil, nil)
	require.NoError(t, err)

	assert.IsType(t, &repository.CatalogRepository{}, catalog.Lookup)
	assert.NoError(t, catalog.Checks[0].Check(context.Background()))
	assert.NoError(t, catalog.Close())
}

func TestOpenCatalogUnknownDriver(t *testing.T) {
	_, err := OpenCatalog(&config.Config{Catalog: config.CatalogConfig{Driver: "mongo"}}, nil, nil)
	assert.EqualError(t, err, `unknown catalog driver "mongo"`)
}

func TestPlannerConfigMapping(t *testing.T) {
	got := PlannerConfig(config.PlannerConfig{MaxCombinations: 5, LookupWorkers: 2, LookupRetries: 1, LookupRetryDelay: time.Second, EnumerationWorkers: 3, DefaultLimit: 7})
	assert.Equal(t, 5, got.MaxCombinations)
	assert.Equal(t, 3, got.EnumerationWorkers)
	assert.Equal(t, time.Second, got.LookupRetryDelay)
}
