package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launch_dash/internal/analytics"
	"launch_dash/internal/models"
	"launch_dash/internal/report"
)

var (
	reportSite   string
	reportMin    float64
	reportMax    float64
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the outcome distribution and payload scatter for one selection",
	Long: `Evaluates a single selection against the configured dataset and prints both views.

--site accepts ALL, SUCCESS, FAILURE or a launch site name. When --min or --max
is omitted the dataset's payload bounds are used.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportSite, "site", models.SiteModeAll, "Site mode: ALL, SUCCESS, FAILURE, or a launch site")
	reportCmd.Flags().Float64Var(&reportMin, "min", 0, "Lower payload bound in kg (default: dataset minimum)")
	reportCmd.Flags().Float64Var(&reportMax, "max", 0, "Upper payload bound in kg (default: dataset maximum)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", string(report.Table), "Output format: table, markdown, json, or yaml")
}

func runReport(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	mode, err := models.ParseSiteMode(reportSite)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := loadStore(cmd.Context(), cfg.Data)
	if err != nil {
		return err
	}

	dash := analytics.NewDashboard(s)
	rng := dash.FullRange()
	if cmd.Flags().Changed("min") {
		rng.Lo = reportMin
	}
	if cmd.Flags().Changed("max") {
		rng.Hi = reportMax
	}

	view, err := dash.Render(models.Selection{Mode: mode, Range: rng})
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return report.Write(cmd.OutOrStdout(), format, view)
}
