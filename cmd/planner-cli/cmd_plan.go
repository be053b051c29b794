package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/noah-isme/course-planner/internal/bootstrap"
	"github.com/noah-isme/course-planner/internal/service"
	"github.com/noah-isme/course-planner/pkg/config"
)

var (
	planRequestPath string
	planCatalogPath string
	planFormat      string
	planOutPath     string
	planRank        int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Rank schedules for a YAML request file",
	Long: `Plan reads a request file, looks the courses up in the catalog and
prints the ranked schedules.

Examples:
  # Rank against the configured catalog
  planner-cli plan --request plan.yaml

  # Use a CSV catalog and write the best schedule as PDF
  planner-cli plan --request plan.yaml --catalog catalog.csv --format pdf --out best.pdf
`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planRequestPath, "request", "r", "", "Path to the YAML plan request")
	planCmd.Flags().StringVar(&planCatalogPath, "catalog", "", "Read sections from this CSV file instead of the configured driver")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "table", "Output format: table, csv or pdf")
	planCmd.Flags().StringVarP(&planOutPath, "out", "o", "", "Write output to this file instead of stdout")
	planCmd.Flags().IntVar(&planRank, "rank", 0, "Schedule to export for csv and pdf (0 is the best)")
	_ = planCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	defer logr.Sync() //nolint:errcheck

	req, err := loadRequest(planRequestPath)
	if err != nil {
		return err
	}

	if planCatalogPath != "" {
		cfg.Catalog.Driver = config.CatalogCSV
		cfg.Catalog.CSVPath = planCatalogPath
	}

	catalog, err := bootstrap.OpenCatalog(cfg, nil, logr)
	if err != nil {
		return err
	}
	defer catalog.Close() //nolint:errcheck

	planner := service.NewPlannerService(catalog.Lookup, nil, validator.New(), logr, bootstrap.PlannerConfig(cfg.Planner))

	var out io.Writer = cmd.OutOrStdout()
	if planOutPath != "" {
		f, err := os.Create(planOutPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	format := strings.ToLower(planFormat)
	if format == "table" {
		resp, err := planner.Plan(cmd.Context(), req)
		if err != nil {
			return err
		}
		return writeTable(out, resp)
	}

	exported, err := planner.Export(cmd.Context(), req, format, planRank)
	if err != nil {
		return err
	}
	if _, err := out.Write(exported.Body); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	if planOutPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", planOutPath, len(exported.Body))
	}
	return nil
}
