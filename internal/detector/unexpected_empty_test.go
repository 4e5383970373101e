package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

func TestUnexpectedEmpty_FlagsEmptyFilesWhenNotTolerated(t *testing.T) {
	profile := &types.SourceProfile{
		SourceID:            "src-1",
		EmptyFileStatsByDay: map[string]map[string]float64{"Mon": {"max": 0}},
	}
	files := []types.FileRecord{
		{Filename: "a.csv", Rows: 0},
		{Filename: "b.csv", Rows: 12},
		{Filename: "c.csv", Rows: 0},
	}

	incidents := UnexpectedEmpty{}.Detect(files, profile, monday)

	require.Len(t, incidents, 2)
	assert.Equal(t, "a.csv", incidents[0].FileName)
	assert.Equal(t, "c.csv", incidents[1].FileName)
	assert.Equal(t, types.SeverityUrgent, incidents[0].Severity)
}

func TestUnexpectedEmpty_ToleratedWhenMaxPositive(t *testing.T) {
	// Monday's baseline allows empty files (max = 1): none are flagged,
	// regardless of how many actually arrive empty.
	profile := &types.SourceProfile{
		SourceID:            "src-1",
		EmptyFileStatsByDay: map[string]map[string]float64{"Mon": {"max": 1}},
	}
	files := []types.FileRecord{
		{Filename: "a.csv", Rows: 0},
		{Filename: "b.csv", Rows: 0},
	}

	assert.Empty(t, UnexpectedEmpty{}.Detect(files, profile, monday))
}

func TestUnexpectedEmpty_NoBaselineDefaultsToZeroMax(t *testing.T) {
	profile := &types.SourceProfile{SourceID: "src-1"}
	files := []types.FileRecord{{Filename: "a.csv", Rows: 0}}

	incidents := UnexpectedEmpty{}.Detect(files, profile, monday)
	assert.Len(t, incidents, 1)
}
