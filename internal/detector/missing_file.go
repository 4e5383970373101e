package detector

import (
	"fmt"
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// MissingFile checks whether the batch is smaller than the weekday's expected
// minimum, and whether any expected entity delivered no file at all. A weekday
// with no count baseline disables both checks ("no opinion", not "expect
// zero").
type MissingFile struct{}

// Name implements Detector.
func (MissingFile) Name() string { return "missing-file" }

// Detect implements Detector.
func (MissingFile) Detect(files []types.FileRecord, profile *types.SourceProfile, day time.Time) []types.Incident {
	stats, ok := profile.ExpectedFilesByDay[dayAbbrev(day)]
	if !ok {
		return nil
	}

	// A historical minimum of zero is treated as an outlier when the median
	// or mode says files normally arrive: the effective minimum becomes 1.
	threshold := stats.Min
	if stats.Min == 0 && (stats.Median > 0 || stats.Mode > 0) {
		threshold = 1
	}

	var incidents []types.Incident
	if len(files) < threshold {
		incidents = append(incidents, types.Incident{
			Type:           types.IncidentMissingFile,
			Severity:       types.SeverityUrgent,
			Description:    fmt.Sprintf("Expected at least %d files (mean %g), but found %d.", threshold, stats.Mean, len(files)),
			Recommendation: "Contact provider to confirm generation and request immediate re-delivery.",
			SourceID:       profile.SourceID,
			Details: map[string]interface{}{
				"expected_min": threshold,
				"found":        len(files),
				"cv_min":       stats.Min,
				"cv_mean":      stats.Mean,
			},
		})
	}

	present := make(map[string]bool)
	for _, f := range files {
		if entity, ok := matchEntity(profile.Entities, f.Filename); ok {
			present[entity] = true
		}
	}

	full := dayFull(day)
	for _, entity := range profile.Entities {
		dayStats, ok := profile.EntityStatsByDay[entity][full]
		if !ok {
			continue
		}
		if dayStats.MedianFiles > 0 && !present[entity] {
			incidents = append(incidents, types.Incident{
				Type:           types.IncidentMissingFile,
				Severity:       types.SeverityUrgent,
				Description:    fmt.Sprintf("Expected files for entity '%s' but none received.", entity),
				Recommendation: fmt.Sprintf("Verify if '%s' generated files today and request re-delivery.", entity),
				SourceID:       profile.SourceID,
				Details:        map[string]interface{}{"entity": entity},
			})
		}
	}

	return incidents
}
