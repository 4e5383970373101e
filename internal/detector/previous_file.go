package detector

import (
	"fmt"
	"regexp"
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// stalenessHorizon is how far behind the evaluation date a file's embedded
// date may be before the file counts as a previous-period upload.
const stalenessHorizon = 48 * time.Hour

var fileDateRe = regexp.MustCompile(`_(\d{8})\.csv$`)

// PreviousFile spots files whose embedded date suffix (_YYYYMMDD.csv) lies
// more than two days before the evaluation date. Informational only: these
// incidents carry AllGood severity and never escalate a source.
type PreviousFile struct{}

// Name implements Detector.
func (PreviousFile) Name() string { return "previous-file" }

// Detect implements Detector.
func (PreviousFile) Detect(files []types.FileRecord, profile *types.SourceProfile, day time.Time) []types.Incident {
	var incidents []types.Incident
	cutoff := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Add(-stalenessHorizon)
	for _, f := range files {
		m := fileDateRe.FindStringSubmatch(f.Filename)
		if m == nil {
			continue
		}
		fileDate, err := time.Parse("20060102", m[1])
		if err != nil {
			continue
		}
		if fileDate.Before(cutoff) {
			incidents = append(incidents, types.Incident{
				Type:           types.IncidentPreviousFile,
				Severity:       types.SeverityAllGood,
				Description:    fmt.Sprintf("File %s is from a previous period (%s).", f.Filename, fileDate.Format("2006-01-02")),
				Recommendation: "No action needed, historical upload.",
				SourceID:       profile.SourceID,
				FileName:       f.Filename,
				Details:        map[string]interface{}{"file_date": fileDate.Format("2006-01-02")},
			})
		}
	}
	return incidents
}
