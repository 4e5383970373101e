package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

func TestDuplicatedFailed_FlaggedStatuses(t *testing.T) {
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{
		{Filename: "a.csv", Status: "OK"},
		{Filename: "b.csv", Status: "STOPPED"},
		{Filename: "c.csv", Status: "failed"},
		{Filename: "d.csv", Status: "OK", IsDuplicated: true},
	}

	incidents := DuplicatedFailed{}.Detect(files, profile, monday)

	require.Len(t, incidents, 3)
	for _, inc := range incidents {
		assert.Equal(t, types.IncidentDuplicatedFile, inc.Type)
		assert.Equal(t, types.SeverityUrgent, inc.Severity)
	}
}

func TestDuplicatedFailed_StatusMatchIsCaseSensitive(t *testing.T) {
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{
		{Filename: "a.csv", Status: "Failed"},
		{Filename: "b.csv", Status: "stopped"},
	}

	assert.Empty(t, DuplicatedFailed{}.Detect(files, profile, monday))
}

func TestDuplicatedFailed_RepeatedFilename(t *testing.T) {
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{
		{Filename: "a.csv", Status: "OK"},
		{Filename: "a.csv", Status: "OK"},
	}

	incidents := DuplicatedFailed{}.Detect(files, profile, monday)

	require.Len(t, incidents, 1)
	assert.Contains(t, incidents[0].Description, "duplicate name")
}

func TestDuplicatedFailed_FlagAndRepeatYieldTwoIncidents(t *testing.T) {
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{
		{Filename: "a.csv", Status: "OK"},
		{Filename: "a.csv", Status: "STOPPED"},
	}

	incidents := DuplicatedFailed{}.Detect(files, profile, monday)
	assert.Len(t, incidents, 2)
}
