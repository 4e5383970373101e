// Package fs implements the provider interfaces on top of a local
// directory tree of batch drops and profile documents.
//
// Layout:
//
//	<dataDir>/<date>_*/files.json        batch for one day, map of source ID
//	                                     to observed file records
//	<dataDir>/datasource_cvs/<id>_native.md  profile document per source
//	<dataDir>/reports/<date>.json        persisted consolidated reports
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// Compile-time interface satisfaction checks.
var (
	_ provider.BatchProvider   = (*Provider)(nil)
	_ provider.ProfileProvider = (*Provider)(nil)
	_ provider.ReportStore     = (*Provider)(nil)
	_ provider.Pinger          = (*Provider)(nil)
)

const (
	batchFileName = "files.json"
	profileDir    = "datasource_cvs"
	profileSuffix = "_native.md"
	reportDir     = "reports"
)

// Provider reads batches and profiles from a data directory.
type Provider struct {
	dataDir string
	logger  *slog.Logger
}

// New creates a filesystem provider rooted at cfg.DataDir.
func New(cfg *types.FSConfig) (*Provider, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("fs provider: dataDir is required")
	}
	return &Provider{dataDir: cfg.DataDir, logger: slog.Default()}, nil
}

// Ping checks that the data directory exists and is readable.
func (p *Provider) Ping(_ context.Context) error {
	if _, err := os.Stat(p.dataDir); err != nil {
		return fmt.Errorf("fs provider ping: %w", err)
	}
	return nil
}

// batchDir locates the batch folder for a date. Folders are named with the
// date as a prefix (for example "2025-09-08_daily"); the first match wins.
func (p *Provider) batchDir(date string) (string, error) {
	entries, err := os.ReadDir(p.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("data dir %s: %w", p.dataDir, provider.ErrNotFound)
		}
		return "", fmt.Errorf("reading data dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), date) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("batch for %s: %w", date, provider.ErrNotFound)
	}
	sort.Strings(names)
	return filepath.Join(p.dataDir, names[0]), nil
}

// readBatch loads and decodes the files.json for a date.
func (p *Provider) readBatch(date string) (map[string][]types.FileRecord, error) {
	dir, err := p.batchDir(date)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(filepath.Join(dir, batchFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("batch file for %s: %w", date, provider.ErrNotFound)
		}
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var batch map[string][]types.FileRecord
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("decoding batch for %s: %w", date, err)
	}
	return batch, nil
}

// ListSources returns the source IDs present in the day's batch, sorted.
func (p *Provider) ListSources(_ context.Context, date string) ([]string, error) {
	batch, err := p.readBatch(date)
	if err != nil {
		return nil, err
	}
	sources := make([]string, 0, len(batch))
	for id := range batch {
		sources = append(sources, id)
	}
	sort.Strings(sources)
	return sources, nil
}

// GetBatch returns the file records for one source on a date. Records whose
// upload timestamp does not fall on the requested date are dropped; drops of
// neighboring days can land in the same folder.
func (p *Provider) GetBatch(_ context.Context, sourceID, date string) ([]types.FileRecord, error) {
	batch, err := p.readBatch(date)
	if err != nil {
		return nil, err
	}
	records := batch[sourceID]
	out := make([]types.FileRecord, 0, len(records))
	for _, r := range records {
		if strings.HasPrefix(r.UploadedAt, date) {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetProfile returns the raw profile document for a source.
func (p *Provider) GetProfile(_ context.Context, sourceID string) (string, error) {
	path := filepath.Join(p.dataDir, profileDir, sourceID+profileSuffix)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("profile for %s: %w", sourceID, provider.ErrNotFound)
		}
		return "", fmt.Errorf("reading profile for %s: %w", sourceID, err)
	}
	return string(raw), nil
}

// PutReport writes a consolidated report under reports/<date>.json.
func (p *Provider) PutReport(_ context.Context, report *types.ConsolidatedReport) error {
	dir := filepath.Join(p.dataDir, reportDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	path := filepath.Join(dir, report.Date+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	p.logger.Debug("report written", "path", path)
	return nil
}

// GetReport loads a previously stored report for a date.
func (p *Provider) GetReport(_ context.Context, date string) (*types.ConsolidatedReport, error) {
	path := filepath.Join(p.dataDir, reportDir, date+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("report for %s: %w", date, provider.ErrNotFound)
		}
		return nil, fmt.Errorf("reading report for %s: %w", date, err)
	}
	var report types.ConsolidatedReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decoding report for %s: %w", date, err)
	}
	return &report, nil
}
