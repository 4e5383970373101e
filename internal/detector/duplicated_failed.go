package detector

import (
	"fmt"
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// Upstream status values that mark a file as failed. Matching is
// case-sensitive: these are the literal values the ingestion layer emits.
const (
	statusStopped = "STOPPED"
	statusFailed  = "failed"
)

// DuplicatedFailed flags files marked duplicated or failed by the ingestion
// layer, and filenames that repeat within a single day's batch. A file hitting
// both conditions yields two incidents.
type DuplicatedFailed struct{}

// Name implements Detector.
func (DuplicatedFailed) Name() string { return "duplicated-failed-file" }

// Detect implements Detector.
func (DuplicatedFailed) Detect(files []types.FileRecord, profile *types.SourceProfile, _ time.Time) []types.Incident {
	var incidents []types.Incident
	seen := make(map[string]bool)
	for _, f := range files {
		if f.IsDuplicated || f.Status == statusStopped || f.Status == statusFailed {
			incidents = append(incidents, types.Incident{
				Type:           types.IncidentDuplicatedFile,
				Severity:       types.SeverityUrgent,
				Description:    fmt.Sprintf("File %s is duplicated or failed.", f.Filename),
				Recommendation: "Check file status and re-process if needed.",
				SourceID:       profile.SourceID,
				FileName:       f.Filename,
				Details: map[string]interface{}{
					"status":        f.Status,
					"is_duplicated": f.IsDuplicated,
				},
			})
		}

		if seen[f.Filename] {
			incidents = append(incidents, types.Incident{
				Type:           types.IncidentDuplicatedFile,
				Severity:       types.SeverityUrgent,
				Description:    fmt.Sprintf("File %s has a duplicate name.", f.Filename),
				Recommendation: "Check for duplicate uploads.",
				SourceID:       profile.SourceID,
				FileName:       f.Filename,
			})
		}
		seen[f.Filename] = true
	}
	return incidents
}
