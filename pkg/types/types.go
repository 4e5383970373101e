// Package types defines the public domain types for the Batchwatch file audit engine.
package types

import "time"

// FileRecord is one uploaded file observation within a source's daily batch.
// JSON tags match the upstream file feed.
type FileRecord struct {
	Filename      string  `json:"filename"`
	Rows          int     `json:"rows"`
	Status        string  `json:"status"`
	IsDuplicated  bool    `json:"is_duplicated"`
	FileSize      float64 `json:"file_size,omitempty"`
	UploadedAt    string  `json:"uploaded_at"`
	StatusMessage string  `json:"status_message,omitempty"`
}

// DayCountStats is the historical file-count distribution for one weekday.
type DayCountStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   float64 `json:"mode"`
	StdDev float64 `json:"stdDev"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
}

// UploadWindow is the expected upload time-of-day window for one weekday.
// Start and End are "HH:MM:SS" strings; an empty string means no bound.
type UploadWindow struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// EntityDayStats is the historical per-entity baseline for one weekday.
type EntityDayStats struct {
	MedianFiles float64 `json:"medianFiles"`
	MedianRows  float64 `json:"medianRows"`
}

// SourceProfile is the historical behavioral baseline for one source, parsed
// from its profile document.
//
// Weekday key schemes are deliberately asymmetric and must stay that way:
// ExpectedFilesByDay, UploadWindowByDay and EmptyFileStatsByDay are keyed by
// abbreviated labels (Mon..Sun); EntityStatsByDay is keyed by full labels
// (Monday..Sunday).
type SourceProfile struct {
	SourceID           string                   `json:"sourceId"`
	ExpectedFilesByDay map[string]DayCountStats `json:"expectedFilesByDay,omitempty"`
	UploadWindowByDay  map[string]UploadWindow  `json:"uploadWindowByDay,omitempty"`
	FilenamePatterns   []string                 `json:"filenamePatterns,omitempty"`

	// Entities preserves the document order of entity rows so that
	// first-match filename attribution is deterministic.
	Entities         []string                             `json:"entities,omitempty"`
	EntityStatsByDay map[string]map[string]EntityDayStats `json:"entityStatsByDay,omitempty"`

	EmptyFileStatsByDay map[string]map[string]float64 `json:"emptyFileStatsByDay,omitempty"`
}

// Incident is one detected anomaly.
type Incident struct {
	Type           IncidentType           `json:"type"`
	Severity       Severity               `json:"severity"`
	Description    string                 `json:"description"`
	Recommendation string                 `json:"recommendation"`
	SourceID       string                 `json:"sourceId"`
	FileName       string                 `json:"fileName,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// SourceReport is one source's consolidated daily outcome.
type SourceReport struct {
	SourceID       string     `json:"sourceId"`
	Status         Severity   `json:"status"`
	Incidents      []Incident `json:"incidents"`
	ProcessedFiles int        `json:"processedFiles"`
	TotalRows      int        `json:"totalRows"`
}

// ConsolidatedReport is the full outcome of one audit run.
// Summary is append-safe: consumers may extend it with their own narrative.
type ConsolidatedReport struct {
	ReportID    string         `json:"reportId"`
	Date        string         `json:"date"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Sources     []SourceReport `json:"sources"`
	Status      Severity       `json:"status"`
	Summary     string         `json:"summary"`
}
