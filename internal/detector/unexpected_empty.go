package detector

import (
	"fmt"
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// UnexpectedEmpty flags zero-row files on weekdays where the historical
// baseline says empty files do not occur. When the weekday's empty-file max
// is positive, empty files are tolerated wholesale that day.
type UnexpectedEmpty struct{}

// Name implements Detector.
func (UnexpectedEmpty) Name() string { return "unexpected-empty-file" }

// Detect implements Detector.
func (UnexpectedEmpty) Detect(files []types.FileRecord, profile *types.SourceProfile, day time.Time) []types.Incident {
	maxEmpty := profile.EmptyFileStatsByDay[dayAbbrev(day)]["max"]
	if maxEmpty > 0 {
		return nil
	}

	var incidents []types.Incident
	for _, f := range files {
		if f.Rows != 0 {
			continue
		}
		incidents = append(incidents, types.Incident{
			Type:           types.IncidentUnexpectedEmpty,
			Severity:       types.SeverityUrgent,
			Description:    fmt.Sprintf("File %s is empty (0 rows).", f.Filename),
			Recommendation: "Verify if the empty file is expected.",
			SourceID:       profile.SourceID,
			FileName:       f.Filename,
			Details: map[string]interface{}{
				"rows":               f.Rows,
				"max_expected_empty": maxEmpty,
			},
		})
	}
	return incidents
}
