package detector

import (
	"fmt"
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// lateTolerance is the grace period added to the expected window end before
// an upload counts as late.
const lateTolerance = 4 * time.Hour

// windowLayout is the time-of-day format used by profile upload windows.
const windowLayout = "15:04:05"

// LateUpload flags files uploaded after the weekday's expected window end
// plus a fixed grace period. The comparison is timezone-naive: any offset on
// the upload timestamp is dropped and its wall-clock value is compared
// against a deadline built on the evaluation date. Profile windows are
// assumed to be expressed in the same reference time as upload timestamps —
// a known quirk kept for compatibility, pending product confirmation.
//
// Parse failures are swallowed: a malformed window disables the check, and a
// malformed upload timestamp ends the batch scan with whatever incidents were
// accumulated before it.
type LateUpload struct{}

// Name implements Detector.
func (LateUpload) Name() string { return "late-upload" }

// Detect implements Detector.
func (LateUpload) Detect(files []types.FileRecord, profile *types.SourceProfile, day time.Time) []types.Incident {
	window, ok := profile.UploadWindowByDay[dayAbbrev(day)]
	if !ok || window.End == "" {
		return nil
	}

	end, err := time.Parse(windowLayout, window.End)
	if err != nil {
		return nil
	}
	expectedEnd := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), end.Second(), 0, time.UTC)
	deadline := expectedEnd.Add(lateTolerance)

	var incidents []types.Incident
	for _, f := range files {
		uploadedAt, err := parseUploadWallClock(f.UploadedAt)
		if err != nil {
			return incidents
		}
		if uploadedAt.After(deadline) {
			incidents = append(incidents, types.Incident{
				Type:           types.IncidentLateUpload,
				Severity:       types.SeverityNeedsAttention,
				Description:    fmt.Sprintf("File %s uploaded at %s, significantly after expected %s.", f.Filename, uploadedAt.Format("2006-01-02 15:04:05"), window.End),
				Recommendation: "Monitor upload delays.",
				SourceID:       profile.SourceID,
				FileName:       f.Filename,
				Details: map[string]interface{}{
					"uploaded_at":  uploadedAt.Format("2006-01-02 15:04:05"),
					"expected_end": expectedEnd.Format("2006-01-02 15:04:05"),
				},
			})
		}
	}
	return incidents
}
