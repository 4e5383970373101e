package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

type flakyBatches struct {
	err   error
	calls int
}

func (f *flakyBatches) ListSources(ctx context.Context, date string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []string{"100001"}, nil
}

func (f *flakyBatches) GetBatch(ctx context.Context, sourceID, date string) ([]types.FileRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []types.FileRecord{{Filename: "acme_20250908.csv"}}, nil
}

type flakyProfiles struct {
	err error
}

func (f *flakyProfiles) GetProfile(ctx context.Context, sourceID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "# Profile", nil
}

func TestBreakerBatchProviderPassThrough(t *testing.T) {
	inner := &flakyBatches{}
	p := NewBreakerBatchProvider(inner, slog.Default())

	sources, err := p.ListSources(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"100001"}, sources)

	files, err := p.GetBatch(context.Background(), "100001", "2025-09-08")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "acme_20250908.csv", files[0].Filename)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyBatches{err: fmt.Errorf("backend down")}
	p := NewBreakerBatchProvider(inner, slog.Default())

	for i := 0; i < 5; i++ {
		_, err := p.ListSources(context.Background(), "2025-09-08")
		require.Error(t, err)
	}

	// Breaker is open now: the inner provider is no longer invoked.
	before := inner.calls
	_, err := p.ListSources(context.Background(), "2025-09-08")
	require.Error(t, err)
	assert.Equal(t, before, inner.calls)
}

func TestBreakerTreatsNotFoundAsSuccess(t *testing.T) {
	inner := &flakyProfiles{err: fmt.Errorf("profile for 100001: %w", ErrNotFound)}
	p := NewBreakerProfileProvider(inner, slog.Default())

	for i := 0; i < 20; i++ {
		_, err := p.GetProfile(context.Background(), "100001")
		require.True(t, errors.Is(err, ErrNotFound))
	}
}
