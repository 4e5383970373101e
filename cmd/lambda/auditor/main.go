// auditor Lambda runs the daily file audit and stores the report.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	intlambda "github.com/batchwatch/batchwatch/internal/lambda"
	"github.com/batchwatch/batchwatch/internal/metrics"
)

var (
	deps     *intlambda.Deps
	depsOnce sync.Once
	depsErr  error
)

func getDeps() (*intlambda.Deps, error) {
	depsOnce.Do(func() {
		deps, depsErr = intlambda.Init(context.Background())
	})
	return deps, depsErr
}

// handleAudit runs the audit for the requested date, persists the report
// and hands it to the publisher.
func handleAudit(ctx context.Context, d *intlambda.Deps, req intlambda.AuditorRequest) (intlambda.AuditorResponse, error) {
	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	report, err := d.Engine.Run(ctx, date)
	if err != nil {
		return intlambda.AuditorResponse{}, fmt.Errorf("audit for %s: %w", date, err)
	}

	if err := d.Store.PutReport(ctx, report); err != nil {
		return intlambda.AuditorResponse{}, fmt.Errorf("storing report for %s: %w", date, err)
	}

	if err := d.Publisher.Publish(ctx, report); err != nil {
		// Report is stored; a failed hand-off must not fail the invocation.
		d.Logger.Error("publishing report failed", "date", date, "error", err)
		metrics.PublishFailures.Add(1)
	} else {
		metrics.ReportsPublished.Add(1)
	}

	incidents := 0
	for _, src := range report.Sources {
		incidents += len(src.Incidents)
	}
	return intlambda.AuditorResponse{
		ReportID:  report.ReportID,
		Date:      report.Date,
		Status:    report.Status,
		Sources:   len(report.Sources),
		Incidents: incidents,
	}, nil
}

func handler(ctx context.Context, req intlambda.AuditorRequest) (intlambda.AuditorResponse, error) {
	d, err := getDeps()
	if err != nil {
		return intlambda.AuditorResponse{}, err
	}
	return handleAudit(ctx, d, req)
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	awslambda.Start(handler)
}
