// Package publish hands finished reports to downstream consumers.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// Publisher delivers a consolidated report to a downstream consumer.
type Publisher interface {
	Publish(ctx context.Context, report *types.ConsolidatedReport) error
	Name() string
}

// New builds a publisher from config. A nil config gets the log publisher.
func New(cfg *types.PublisherConfig, logger *slog.Logger) (Publisher, error) {
	if cfg == nil {
		return NewLogPublisher(logger), nil
	}
	switch cfg.Type {
	case types.PublisherLog, "":
		return NewLogPublisher(logger), nil
	case types.PublisherSQS:
		if cfg.QueueURL == "" {
			return nil, fmt.Errorf("sqs publisher: queueUrl required")
		}
		return NewSQSPublisher(cfg.QueueURL, cfg.Region)
	default:
		return nil, fmt.Errorf("unknown publisher type %q", cfg.Type)
	}
}

// LogPublisher emits a summary of the report to the structured log. It is
// the default when no downstream consumer is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a log publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Name returns the publisher identifier.
func (p *LogPublisher) Name() string { return "log" }

// Publish logs the report status and per-source incident counts.
func (p *LogPublisher) Publish(_ context.Context, report *types.ConsolidatedReport) error {
	incidents := 0
	for _, src := range report.Sources {
		incidents += len(src.Incidents)
	}
	p.logger.Info("audit report ready",
		"report_id", report.ReportID,
		"date", report.Date,
		"status", string(report.Status),
		"sources", len(report.Sources),
		"incidents", incidents)
	return nil
}
