package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/course-planner/internal/bootstrap"
	"github.com/noah-isme/course-planner/pkg/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the catalog lookup cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop every cached catalog lookup from Redis",
	RunE:  runCachePurge,
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	defer logr.Sync() //nolint:errcheck

	// purging never reads sections, so skip the database connection
	cfg.Catalog.Driver = config.CatalogCSV
	cfg.Catalog.CacheEnabled = true
	catalog, err := bootstrap.OpenCatalog(cfg, nil, logr)
	if err != nil {
		return err
	}
	defer catalog.Close() //nolint:errcheck

	if catalog.Cache == nil {
		return errors.New("catalog cache is not configured")
	}
	removed, err := catalog.Cache.Purge(cmd.Context())
	if err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached lookups\n", removed)
	return nil
}
