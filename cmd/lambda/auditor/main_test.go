package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/internal/engine"
	intlambda "github.com/batchwatch/batchwatch/internal/lambda"
	"github.com/batchwatch/batchwatch/internal/publish"
	"github.com/batchwatch/batchwatch/internal/testutil"
	"github.com/batchwatch/batchwatch/pkg/types"
)

const testProfileDoc = "# Source Profile\n" +
	"**Resource ID**: 100001\n\n" +
	"## File Processing Statistics by Day\n\n" +
	"| Day | Mean Files | Median Files | Mode Files | Std Dev | Min Files | Max Files |\n" +
	"|-----|-----------|--------------|------------|---------|-----------|----------|\n" +
	"| Mon | 1.0 | 1.0 | 1.0 | 0.0 | 1 | 1 |\n"

func testDeps(t *testing.T) (*intlambda.Deps, *testutil.MockReportStore) {
	t.Helper()
	batches := testutil.NewMockBatchProvider()
	batches.SetBatch("2025-09-08", "100001", []types.FileRecord{
		{Filename: "acme_20250908.csv", Rows: 50, Status: "SUCCESS", UploadedAt: "2025-09-08T06:00:00"},
	})
	profiles := testutil.NewMockProfileProvider()
	profiles.SetProfile("100001", testProfileDoc)
	store := testutil.NewMockReportStore()

	return &intlambda.Deps{
		Engine:    engine.New(batches, profiles, nil),
		Store:     store,
		Publisher: publish.NewLogPublisher(nil),
		Logger:    slog.Default(),
	}, store
}

func TestHandleAudit(t *testing.T) {
	deps, store := testDeps(t)

	resp, err := handleAudit(context.Background(), deps, intlambda.AuditorRequest{Date: "2025-09-08"})
	require.NoError(t, err)

	assert.Equal(t, "2025-09-08", resp.Date)
	assert.Equal(t, types.SeverityAllGood, resp.Status)
	assert.Equal(t, 1, resp.Sources)
	assert.Equal(t, 0, resp.Incidents)
	assert.NotEmpty(t, resp.ReportID)

	stored, err := store.GetReport(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, resp.ReportID, stored.ReportID)
}

func TestHandleAuditMissingBatch(t *testing.T) {
	deps, _ := testDeps(t)

	_, err := handleAudit(context.Background(), deps, intlambda.AuditorRequest{Date: "2025-12-25"})
	assert.Error(t, err)
}
