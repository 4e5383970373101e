// Package engine orchestrates a daily audit run: it fans out over the
// sources present in a day's batch, runs the detection suite against each
// source's baseline profile, and consolidates the results into one report.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/batchwatch/batchwatch/internal/detector"
	"github.com/batchwatch/batchwatch/internal/metrics"
	"github.com/batchwatch/batchwatch/internal/profile"
	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/internal/report"
	"github.com/batchwatch/batchwatch/pkg/types"
)

var tracer = otel.Tracer("batchwatch/engine")

const (
	dateLayout         = "2006-01-02"
	defaultConcurrency = 8
)

// Engine runs daily audits.
type Engine struct {
	batches     provider.BatchProvider
	profiles    provider.ProfileProvider
	suite       []detector.Detector
	logger      *slog.Logger
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency caps the number of sources audited in parallel.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithSuite replaces the default detection suite.
func WithSuite(suite []detector.Detector) Option {
	return func(e *Engine) { e.suite = suite }
}

// New creates an engine over the given providers.
func New(batches provider.BatchProvider, profiles provider.ProfileProvider, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		batches:     batches,
		profiles:    profiles,
		suite:       detector.Suite(),
		logger:      logger,
		concurrency: defaultConcurrency,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run audits every source present in the batch for date (YYYY-MM-DD) and
// returns the consolidated report. Sources without a profile are skipped
// with a warning; the run fails only when the date is malformed, the day's
// batch is absent, or a provider errors.
func (e *Engine) Run(ctx context.Context, date string) (*types.ConsolidatedReport, error) {
	ctx, span := tracer.Start(ctx, "engine.Run")
	defer span.End()
	span.SetAttributes(attribute.String("audit.date", date))

	metrics.RunsTotal.Add(1)

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		metrics.RunErrors.Add(1)
		return nil, fmt.Errorf("invalid audit date %q: %w", date, err)
	}

	sources, err := e.batches.ListSources(ctx, date)
	if err != nil {
		metrics.RunErrors.Add(1)
		return nil, fmt.Errorf("listing sources for %s: %w", date, err)
	}

	e.logger.Info("audit run started", "date", date, "sources", len(sources))

	// Results are written by index so the report keeps the sorted source
	// order regardless of which goroutine finishes first.
	results := make([]*types.SourceReport, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, sourceID := range sources {
		i, sourceID := i, sourceID
		g.Go(func() error {
			sr, err := e.auditSource(gctx, sourceID, date, day)
			if err != nil {
				return err
			}
			results[i] = sr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.RunErrors.Add(1)
		return nil, err
	}

	reports := make([]types.SourceReport, 0, len(results))
	for _, sr := range results {
		if sr != nil {
			reports = append(reports, *sr)
		}
	}

	consolidated := report.Generate(date, reports)
	for _, src := range consolidated.Sources {
		metrics.IncidentsTotal.Add(int64(len(src.Incidents)))
	}
	e.logger.Info("audit run finished",
		"date", date,
		"report_id", consolidated.ReportID,
		"status", string(consolidated.Status),
		"sources", len(consolidated.Sources))
	return consolidated, nil
}

// auditSource runs the full suite for one source. A missing profile skips
// the source; any other provider error aborts the run.
func (e *Engine) auditSource(ctx context.Context, sourceID, date string, day time.Time) (*types.SourceReport, error) {
	ctx, span := tracer.Start(ctx, "engine.auditSource")
	defer span.End()
	span.SetAttributes(attribute.String("audit.source", sourceID))

	doc, err := e.profiles.GetProfile(ctx, sourceID)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			e.logger.Warn("no profile for source, skipping", "source", sourceID, "date", date)
			metrics.SourcesSkipped.Add(1)
			return nil, nil
		}
		return nil, fmt.Errorf("fetching profile for %s: %w", sourceID, err)
	}

	files, err := e.batches.GetBatch(ctx, sourceID, date)
	if err != nil {
		return nil, fmt.Errorf("fetching batch for %s: %w", sourceID, err)
	}

	prof := profile.Parse(doc)
	if prof.SourceID == profile.UnknownSourceID {
		prof.SourceID = sourceID
	}

	var incidents []types.Incident
	for _, d := range e.suite {
		incidents = append(incidents, d.Detect(files, prof, day)...)
	}

	totalRows := 0
	for _, f := range files {
		totalRows += f.Rows
	}

	sr := report.ConsolidateSource(sourceID, incidents, len(files), totalRows)

	metrics.SourcesAudited.Add(1)
	e.logger.Debug("source audited",
		"source", sourceID,
		"files", len(files),
		"incidents", len(incidents),
		"status", string(sr.Status))
	return &sr, nil
}
