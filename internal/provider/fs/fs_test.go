package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/pkg/types"
)

const batchJSON = `{
  "100001": [
    {"filename": "acme_20250908.csv", "rows": 120, "status": "SUCCESS", "uploaded_at": "2025-09-08T06:10:00"},
    {"filename": "acme_late_20250907.csv", "rows": 80, "status": "SUCCESS", "uploaded_at": "2025-09-07T23:55:00"}
  ],
  "100002": [
    {"filename": "pos_20250908.csv", "rows": 10, "status": "SUCCESS", "uploaded_at": "2025-09-08T07:00:00"}
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	batchDir := filepath.Join(dir, "2025-09-08_daily")
	require.NoError(t, os.MkdirAll(batchDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(batchDir, "files.json"), []byte(batchJSON), 0o644))

	cvDir := filepath.Join(dir, "datasource_cvs")
	require.NoError(t, os.MkdirAll(cvDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cvDir, "100001_native.md"),
		[]byte("# Source Profile\n**Resource ID**: 100001\n"), 0o644))
	return dir
}

func TestListSourcesSorted(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: writeFixture(t)})
	require.NoError(t, err)

	sources, err := p.ListSources(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"100001", "100002"}, sources)
}

func TestListSourcesMissingDate(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: writeFixture(t)})
	require.NoError(t, err)

	_, err = p.ListSources(context.Background(), "2025-09-09")
	assert.True(t, errors.Is(err, provider.ErrNotFound))
}

func TestGetBatchFiltersByDate(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: writeFixture(t)})
	require.NoError(t, err)

	files, err := p.GetBatch(context.Background(), "100001", "2025-09-08")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "acme_20250908.csv", files[0].Filename)
}

func TestGetBatchUnknownSourceIsEmpty(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: writeFixture(t)})
	require.NoError(t, err)

	files, err := p.GetBatch(context.Background(), "999999", "2025-09-08")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGetProfile(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: writeFixture(t)})
	require.NoError(t, err)

	doc, err := p.GetProfile(context.Background(), "100001")
	require.NoError(t, err)
	assert.Contains(t, doc, "**Resource ID**: 100001")

	_, err = p.GetProfile(context.Background(), "100002")
	assert.True(t, errors.Is(err, provider.ErrNotFound))
}

func TestReportRoundTrip(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: writeFixture(t)})
	require.NoError(t, err)

	report := &types.ConsolidatedReport{
		ReportID: "01J0TEST",
		Date:     "2025-09-08",
		Status:   types.SeverityAllGood,
	}
	require.NoError(t, p.PutReport(context.Background(), report))

	got, err := p.GetReport(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, got.ReportID)
	assert.Equal(t, types.SeverityAllGood, got.Status)

	_, err = p.GetReport(context.Background(), "2025-09-09")
	assert.True(t, errors.Is(err, provider.ErrNotFound))
}

func TestPingMissingDir(t *testing.T) {
	p, err := New(&types.FSConfig{DataDir: filepath.Join(t.TempDir(), "absent")})
	require.NoError(t, err)
	assert.Error(t, p.Ping(context.Background()))
}
