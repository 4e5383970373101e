package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

func windowProfile(day, start, end string) *types.SourceProfile {
	return &types.SourceProfile{
		SourceID:          "src-1",
		UploadWindowByDay: map[string]types.UploadWindow{day: {Start: start, End: end}},
	}
}

func TestLateUpload_AfterTolerance(t *testing.T) {
	// Window ends 09:00; tolerance pushes the deadline to 13:00.
	profile := windowProfile("Mon", "08:00:00", "09:00:00")
	files := []types.FileRecord{
		{Filename: "late.csv", UploadedAt: "2025-09-08T14:05:00+00:00"},
		{Filename: "fine.csv", UploadedAt: "2025-09-08T12:30:00+00:00"},
	}

	incidents := LateUpload{}.Detect(files, profile, monday)

	require.Len(t, incidents, 1)
	assert.Equal(t, "late.csv", incidents[0].FileName)
	assert.Equal(t, types.SeverityNeedsAttention, incidents[0].Severity)
	assert.Equal(t, types.IncidentLateUpload, incidents[0].Type)
}

func TestLateUpload_OffsetIsDropped(t *testing.T) {
	// 14:05+06:00 is 08:05 UTC, but the offset is deliberately ignored:
	// the wall-clock 14:05 is compared against the naive 13:00 deadline.
	profile := windowProfile("Mon", "08:00:00", "09:00:00")
	files := []types.FileRecord{{Filename: "a.csv", UploadedAt: "2025-09-08T14:05:00+06:00"}}

	assert.Len(t, LateUpload{}.Detect(files, profile, monday), 1)
}

func TestLateUpload_NoWindowNoCheck(t *testing.T) {
	files := []types.FileRecord{{Filename: "a.csv", UploadedAt: "2025-09-08T23:59:00+00:00"}}

	assert.Empty(t, LateUpload{}.Detect(files, &types.SourceProfile{SourceID: "s"}, monday))
	assert.Empty(t, LateUpload{}.Detect(files, windowProfile("Mon", "08:00:00", ""), monday))
}

func TestLateUpload_MalformedWindowDisablesCheck(t *testing.T) {
	files := []types.FileRecord{{Filename: "a.csv", UploadedAt: "2025-09-08T23:59:00+00:00"}}

	assert.Empty(t, LateUpload{}.Detect(files, windowProfile("Mon", "08:00:00", "end of day"), monday))
}

func TestLateUpload_MalformedTimestampEndsScan(t *testing.T) {
	// The first malformed timestamp aborts the rest of the batch; incidents
	// found before it are kept.
	profile := windowProfile("Mon", "08:00:00", "09:00:00")
	files := []types.FileRecord{
		{Filename: "late1.csv", UploadedAt: "2025-09-08T14:05:00+00:00"},
		{Filename: "broken.csv", UploadedAt: "yesterday-ish"},
		{Filename: "late2.csv", UploadedAt: "2025-09-08T15:00:00+00:00"},
	}

	incidents := LateUpload{}.Detect(files, profile, monday)

	require.Len(t, incidents, 1)
	assert.Equal(t, "late1.csv", incidents[0].FileName)
}

func TestLateUpload_FractionalSecondsAndNaiveTimestamps(t *testing.T) {
	profile := windowProfile("Mon", "08:00:00", "09:00:00")
	files := []types.FileRecord{
		{Filename: "a.csv", UploadedAt: "2025-09-08T14:05:00.089856+00:00"},
		{Filename: "b.csv", UploadedAt: "2025-09-08T14:10:00"},
	}

	assert.Len(t, LateUpload{}.Detect(files, profile, monday), 2)
}
