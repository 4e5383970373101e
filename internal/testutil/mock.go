// Package testutil provides in-memory provider implementations for tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// Compile-time interface satisfaction checks.
var (
	_ provider.BatchProvider   = (*MockBatchProvider)(nil)
	_ provider.ProfileProvider = (*MockProfileProvider)(nil)
	_ provider.ReportStore     = (*MockReportStore)(nil)
)

// MockBatchProvider serves batches from an in-memory map of
// date -> source ID -> file records.
type MockBatchProvider struct {
	mu      sync.Mutex
	Batches map[string]map[string][]types.FileRecord
	Err     error
}

// NewMockBatchProvider creates an empty mock batch provider.
func NewMockBatchProvider() *MockBatchProvider {
	return &MockBatchProvider{Batches: make(map[string]map[string][]types.FileRecord)}
}

// SetBatch registers a batch for a source on a date.
func (m *MockBatchProvider) SetBatch(date, sourceID string, files []types.FileRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Batches[date] == nil {
		m.Batches[date] = make(map[string][]types.FileRecord)
	}
	m.Batches[date][sourceID] = files
}

func (m *MockBatchProvider) ListSources(_ context.Context, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	day, ok := m.Batches[date]
	if !ok {
		return nil, fmt.Errorf("batch for %s: %w", date, provider.ErrNotFound)
	}
	sources := make([]string, 0, len(day))
	for id := range day {
		sources = append(sources, id)
	}
	sort.Strings(sources)
	return sources, nil
}

func (m *MockBatchProvider) GetBatch(_ context.Context, sourceID, date string) ([]types.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	day, ok := m.Batches[date]
	if !ok {
		return nil, fmt.Errorf("batch for %s: %w", date, provider.ErrNotFound)
	}
	return day[sourceID], nil
}

// MockProfileProvider serves profile documents from an in-memory map.
type MockProfileProvider struct {
	mu       sync.Mutex
	Profiles map[string]string
	Err      error
}

// NewMockProfileProvider creates an empty mock profile provider.
func NewMockProfileProvider() *MockProfileProvider {
	return &MockProfileProvider{Profiles: make(map[string]string)}
}

// SetProfile registers a profile document for a source.
func (m *MockProfileProvider) SetProfile(sourceID, doc string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Profiles[sourceID] = doc
}

func (m *MockProfileProvider) GetProfile(_ context.Context, sourceID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	doc, ok := m.Profiles[sourceID]
	if !ok {
		return "", fmt.Errorf("profile for %s: %w", sourceID, provider.ErrNotFound)
	}
	return doc, nil
}

// MockReportStore keeps consolidated reports in memory, keyed by date.
type MockReportStore struct {
	mu      sync.Mutex
	Reports map[string]*types.ConsolidatedReport
	Err     error
}

// NewMockReportStore creates an empty mock report store.
func NewMockReportStore() *MockReportStore {
	return &MockReportStore{Reports: make(map[string]*types.ConsolidatedReport)}
}

func (m *MockReportStore) PutReport(_ context.Context, report *types.ConsolidatedReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Reports[report.Date] = report
	return nil
}

func (m *MockReportStore) GetReport(_ context.Context, date string) (*types.ConsolidatedReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	report, ok := m.Reports[date]
	if !ok {
		return nil, fmt.Errorf("report for %s: %w", date, provider.ErrNotFound)
	}
	return report, nil
}
