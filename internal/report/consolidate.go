// Package report consolidates incidents into per-source and overall reports.
package report

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// attentionEscalation is the NeedsAttention incident count above which a
// source escalates to Urgent: many minor issues are treated as one major one.
const attentionEscalation = 3

// ConsolidateSource aggregates one source's incidents into a SourceReport.
// AllGood-severity incidents are informational and never affect the status.
func ConsolidateSource(sourceID string, incidents []types.Incident, processedFiles, totalRows int) types.SourceReport {
	var urgent, attention int
	for _, inc := range incidents {
		switch inc.Severity {
		case types.SeverityUrgent:
			urgent++
		case types.SeverityNeedsAttention:
			attention++
		}
	}

	status := types.SeverityAllGood
	switch {
	case urgent >= 1:
		status = types.SeverityUrgent
	case attention > attentionEscalation:
		status = types.SeverityUrgent
	case attention > 0:
		status = types.SeverityNeedsAttention
	}

	return types.SourceReport{
		SourceID:       sourceID,
		Status:         status,
		Incidents:      incidents,
		ProcessedFiles: processedFiles,
		TotalRows:      totalRows,
	}
}

// Generate rolls per-source reports into one consolidated report. The overall
// status is the worst source status; the summary is a plain-text default that
// consumers may append to.
func Generate(date string, sources []types.SourceReport) *types.ConsolidatedReport {
	var urgent, attention int
	for _, sr := range sources {
		switch sr.Status {
		case types.SeverityUrgent:
			urgent++
		case types.SeverityNeedsAttention:
			attention++
		}
	}

	status := types.SeverityAllGood
	switch {
	case urgent > 0:
		status = types.SeverityUrgent
	case attention > 0:
		status = types.SeverityNeedsAttention
	}

	summary := fmt.Sprintf("Report for %s\nStatus: %s\nSources with Urgent Incidents: %d\nSources Needing Attention: %d\n",
		date, status, urgent, attention)

	return &types.ConsolidatedReport{
		ReportID:    ulid.Make().String(),
		Date:        date,
		GeneratedAt: time.Now().UTC(),
		Sources:     sources,
		Status:      status,
		Summary:     summary,
	}
}
