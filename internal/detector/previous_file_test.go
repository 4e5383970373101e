package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

func TestPreviousFile_StaleSuffix(t *testing.T) {
	evalDate := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{
		{Filename: "batch_20250907.csv"}, // 3 days prior: stale
		{Filename: "batch_20250909.csv"}, // 1 day prior: fine
		{Filename: "batch_20250908.csv"}, // exactly 2 days prior: fine
	}

	incidents := PreviousFile{}.Detect(files, profile, evalDate)

	require.Len(t, incidents, 1)
	assert.Equal(t, "batch_20250907.csv", incidents[0].FileName)
	assert.Equal(t, types.SeverityAllGood, incidents[0].Severity)
	assert.Equal(t, types.IncidentPreviousFile, incidents[0].Type)
	assert.Equal(t, "2025-09-07", incidents[0].Details["file_date"])
}

func TestPreviousFile_NoSuffixNotEvaluated(t *testing.T) {
	evalDate := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{
		{Filename: "batch.csv"},
		{Filename: "batch_2025.csv"},
		{Filename: "batch_20250901.txt"}, // wrong extension
		{Filename: "batch_20250901.csv.bak"},
	}

	assert.Empty(t, PreviousFile{}.Detect(files, profile, evalDate))
}

func TestPreviousFile_InvalidEmbeddedDateIgnored(t *testing.T) {
	evalDate := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{{Filename: "batch_00000000.csv"}}

	assert.Empty(t, PreviousFile{}.Detect(files, profile, evalDate))
}
