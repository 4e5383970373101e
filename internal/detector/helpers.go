package detector

import (
	"fmt"
	"strings"
	"time"
)

// dayAbbrev returns the abbreviated weekday label (Mon..Sun) used by the
// count, window and empty-file baselines.
func dayAbbrev(t time.Time) string { return t.Format("Mon") }

// dayFull returns the full weekday label (Monday..Sunday) used by the
// per-entity baselines.
func dayFull(t time.Time) string { return t.Format("Monday") }

// matchEntity attributes a filename to at most one entity: the first entity,
// in profile document order, whose "_{entity}_" token appears as a literal
// substring. This heuristic is knowingly fragile but must be preserved as-is
// for compatibility with the historical baselines.
func matchEntity(entities []string, filename string) (string, bool) {
	for _, e := range entities {
		if strings.Contains(filename, "_"+e+"_") {
			return e, true
		}
	}
	return "", false
}

// uploadLayouts are the accepted upload-timestamp formats, with and without
// a zone offset.
var uploadLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// parseUploadWallClock parses an upload timestamp and drops any zone
// information: the returned time carries the timestamp's wall-clock fields in
// UTC, so it compares directly against naive deadlines built from profile
// windows.
func parseUploadWallClock(value string) (time.Time, error) {
	for _, layout := range uploadLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized upload timestamp %q", value)
}
