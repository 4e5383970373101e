package detector

import (
	"fmt"
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// Volume deviation bounds.
const (
	surgeFactor   = 1.5 // day total above max * surgeFactor is a surge
	rowHighFactor = 3.0 // file rows above median * rowHighFactor deviate
	rowLowFactor  = 0.1 // file rows below median * rowLowFactor deviate
)

// VolumeVariation flags a source-level file-count surge against the weekday
// maximum, and per-file row counts that deviate hard from the matched
// entity's median. Each file contributes at most one row incident (one entity
// match per file).
type VolumeVariation struct{}

// Name implements Detector.
func (VolumeVariation) Name() string { return "volume-variation" }

// Detect implements Detector.
func (VolumeVariation) Detect(files []types.FileRecord, profile *types.SourceProfile, day time.Time) []types.Incident {
	stats, ok := profile.ExpectedFilesByDay[dayAbbrev(day)]
	if !ok {
		return nil
	}

	var incidents []types.Incident
	if stats.Max > 0 && float64(len(files)) > float64(stats.Max)*surgeFactor {
		incidents = append(incidents, types.Incident{
			Type:           types.IncidentVolumeVariation,
			Severity:       types.SeverityNeedsAttention,
			Description:    fmt.Sprintf("Total files (%d) significantly higher than expected max (%d).", len(files), stats.Max),
			Recommendation: "Investigate the surge in files.",
			SourceID:       profile.SourceID,
			Details: map[string]interface{}{
				"total_files":  len(files),
				"expected_max": stats.Max,
			},
		})
	}

	full := dayFull(day)
	for _, f := range files {
		entity, ok := matchEntity(profile.Entities, f.Filename)
		if !ok {
			continue
		}
		dayStats, ok := profile.EntityStatsByDay[entity][full]
		if !ok || dayStats.MedianRows <= 0 {
			continue
		}
		rows := float64(f.Rows)
		if rows > dayStats.MedianRows*rowHighFactor || rows < dayStats.MedianRows*rowLowFactor {
			incidents = append(incidents, types.Incident{
				Type:           types.IncidentVolumeVariation,
				Severity:       types.SeverityNeedsAttention,
				Description:    fmt.Sprintf("File %s has %d rows, deviating from median %g.", f.Filename, f.Rows, dayStats.MedianRows),
				Recommendation: "Check for data completeness or duplication.",
				SourceID:       profile.SourceID,
				FileName:       f.Filename,
				Details: map[string]interface{}{
					"rows":        f.Rows,
					"median_rows": dayStats.MedianRows,
				},
			})
		}
	}
	return incidents
}
