// Package provider defines the storage collaborators of the audit engine.
package provider

import (
	"context"
	"errors"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// ErrNotFound signals that a requested batch, profile or report does not
// exist. Implementations wrap it with %w so callers can test with errors.Is.
// Any other provider error is an infrastructure failure and surfaces to the
// caller as-is.
var ErrNotFound = errors.New("not found")

// BatchProvider supplies the daily file batches observed per source.
type BatchProvider interface {
	// ListSources returns the source IDs that have data for the given date,
	// sorted. Returns ErrNotFound when the whole day's batch is absent.
	ListSources(ctx context.Context, date string) ([]string, error)

	// GetBatch returns the ordered file records observed for one source on
	// the given date, filtered to records belonging to that date. A source
	// with no records yields an empty slice, not an error.
	GetBatch(ctx context.Context, sourceID, date string) ([]types.FileRecord, error)
}

// ProfileProvider supplies raw profile document text per source.
type ProfileProvider interface {
	// GetProfile returns the profile document for a source, or ErrNotFound.
	GetProfile(ctx context.Context, sourceID string) (string, error)
}

// ReportStore persists finished consolidated reports for later retrieval.
type ReportStore interface {
	PutReport(ctx context.Context, report *types.ConsolidatedReport) error
	GetReport(ctx context.Context, date string) (*types.ConsolidatedReport, error)
}

// Pinger is implemented by providers that can check backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
