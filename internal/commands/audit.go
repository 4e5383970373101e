package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/batchwatch/batchwatch/internal/config"
	"github.com/batchwatch/batchwatch/internal/engine"
	"github.com/batchwatch/batchwatch/internal/metrics"
	"github.com/batchwatch/batchwatch/internal/publish"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	var asJSON bool
	var noStore bool

	cmd := &cobra.Command{
		Use:   "audit [date]",
		Short: "Run the daily file audit for a date (YYYY-MM-DD, default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC().Format("2006-01-02")
			if len(args) > 0 {
				date = args[0]
			}
			return runAudit(date, asJSON, noStore)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "do not persist or publish the report")
	return cmd
}

func runAudit(date string, asJSON, noStore bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.Default()
	provs, err := newProviders(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if provs.Start != nil {
		if err := provs.Start(ctx); err != nil {
			return fmt.Errorf("starting provider: %w", err)
		}
	}

	eng := engine.New(provs.Batches, provs.Profiles, logger,
		engine.WithConcurrency(concurrency(cfg)))

	report, err := eng.Run(ctx, date)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if !noStore {
		if err := provs.Reports.PutReport(ctx, report); err != nil {
			return fmt.Errorf("storing report: %w", err)
		}
		pub, err := publish.New(cfg.Publisher, logger)
		if err != nil {
			return fmt.Errorf("creating publisher: %w", err)
		}
		if err := pub.Publish(ctx, report); err != nil {
			metrics.PublishFailures.Add(1)
			return fmt.Errorf("publishing report: %w", err)
		}
		metrics.ReportsPublished.Add(1)
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}
	printReport(report)
	return nil
}

func printReport(report *types.ConsolidatedReport) {
	bold := color.New(color.Bold)
	_, _ = bold.Printf("Audit Report %s (%s)\n\n", report.Date, report.ReportID)

	for _, src := range report.Sources {
		fmt.Printf("  %-12s %-18s files=%-4d rows=%d\n",
			src.SourceID, severityStr(src.Status), src.ProcessedFiles, src.TotalRows)
		for _, inc := range src.Incidents {
			fmt.Printf("    - [%s] %s: %s\n", severityStr(inc.Severity), inc.Type, inc.Description)
		}
	}

	fmt.Println()
	fmt.Printf("Overall: %s\n", severityStr(report.Status))
}

func severityStr(s types.Severity) string {
	switch s {
	case types.SeverityUrgent:
		return color.RedString(string(s))
	case types.SeverityNeedsAttention:
		return color.YellowString(string(s))
	case types.SeverityAllGood:
		return color.GreenString(string(s))
	default:
		return string(s)
	}
}
