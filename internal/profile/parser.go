// Package profile parses semi-structured source profile documents into typed
// statistical baselines.
//
// Profile documents are produced by humans and report generators, so every
// section is optional and every cell is parsed defensively: a missing heading
// yields an empty mapping, a non-numeric cell silently becomes 0. Parsing
// never fails — the worst outcome is a profile with no expectations.
package profile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// UnknownSourceID is returned when a document carries no source identifier.
const UnknownSourceID = "Unknown"

// Section headings located in the document. Matching is plain substring
// search so heading level markup does not matter.
const (
	headingFileStats   = "File Processing Statistics by Day"
	headingUploadSched = "Upload Schedule Patterns by Day"
	headingEntityStats = "Entity Statistics by Day of Week"
	headingDaySummary  = "Day-of-Week Summary"
)

var (
	sourceIDRe    = regexp.MustCompile(`\*\*Resource ID\*\*:\s*(\d+)`)
	patternRe     = regexp.MustCompile("Generic structure\\s*`([^`]+)`")
	medianFilesRe = regexp.MustCompile(`Median Files:\s*([\d.]+)`)
	medianRowsRe  = regexp.MustCompile(`Median Rows:\s*([\d.]+)`)
)

// Parse extracts a SourceProfile from a profile document. It never fails:
// each section extractor independently degrades to an empty default when its
// heading or rows are absent or malformed.
func Parse(doc string) *types.SourceProfile {
	p := &types.SourceProfile{
		SourceID:            extractSourceID(doc),
		ExpectedFilesByDay:  extractFileStats(doc),
		UploadWindowByDay:   extractUploadWindows(doc),
		FilenamePatterns:    extractFilenamePatterns(doc),
		EmptyFileStatsByDay: extractEmptyFileStats(doc),
	}
	p.Entities, p.EntityStatsByDay = extractEntityStats(doc)
	return p
}

func extractSourceID(doc string) string {
	if m := sourceIDRe.FindStringSubmatch(doc); m != nil {
		return m[1]
	}
	return UnknownSourceID
}

func extractFilenamePatterns(doc string) []string {
	var patterns []string
	if m := patternRe.FindStringSubmatch(doc); m != nil {
		patterns = append(patterns, m[1])
	}
	return patterns
}

func extractFileStats(doc string) map[string]types.DayCountStats {
	stats := make(map[string]types.DayCountStats)
	for _, line := range tableLines(doc, headingFileStats) {
		if isSeparatorRow(line) || strings.Contains(line, "Mean Files") {
			continue
		}
		cells := splitRow(line)
		if len(cells) < 7 {
			continue
		}
		stats[cells[0]] = types.DayCountStats{
			Mean:   num(cells[1]),
			Median: num(cells[2]),
			Mode:   num(cells[3]),
			StdDev: num(cells[4]),
			Min:    int(num(cells[5])),
			Max:    int(num(cells[6])),
		}
	}
	return stats
}

func extractUploadWindows(doc string) map[string]types.UploadWindow {
	windows := make(map[string]types.UploadWindow)
	for _, line := range tableLines(doc, headingUploadSched) {
		if isSeparatorRow(line) || strings.Contains(line, "Upload Hour") {
			continue
		}
		cells := splitRow(line)
		if len(cells) < 6 {
			continue
		}
		day := cells[0]
		cell := strings.ReplaceAll(cells[5], " UTC", "")
		sep := ""
		switch {
		case strings.Contains(cell, "–"): // en-dash
			sep = "–"
		case strings.Contains(cell, "-"):
			sep = "-"
		}
		if sep == "" {
			// No separator means the window is tracked but unknown: an
			// explicit entry with both ends absent, not an omitted weekday.
			windows[day] = types.UploadWindow{}
			continue
		}
		parts := strings.SplitN(cell, sep, 2)
		windows[day] = types.UploadWindow{
			Start: strings.TrimSpace(parts[0]),
			End:   strings.TrimSpace(parts[1]),
		}
	}
	return windows
}

func extractEntityStats(doc string) ([]string, map[string]map[string]types.EntityDayStats) {
	lines := tableLines(doc, headingEntityStats)

	var days []string
	for _, line := range lines {
		if strings.Contains(line, "Entity") && strings.Contains(line, "Monday") {
			cells := splitRow(line)
			if len(cells) > 1 {
				days = cells[1:]
			}
			break
		}
	}
	if days == nil {
		return nil, map[string]map[string]types.EntityDayStats{}
	}

	var order []string
	stats := make(map[string]map[string]types.EntityDayStats)
	for _, line := range lines {
		if isSeparatorRow(line) || strings.Contains(line, "Entity") {
			continue
		}
		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}
		entity := cells[0]
		if _, seen := stats[entity]; !seen {
			order = append(order, entity)
			stats[entity] = make(map[string]types.EntityDayStats)
		}
		for i, cell := range cells[1:] {
			if i >= len(days) {
				break
			}
			var ds types.EntityDayStats
			if m := medianFilesRe.FindStringSubmatch(cell); m != nil {
				ds.MedianFiles = num(m[1])
			}
			if m := medianRowsRe.FindStringSubmatch(cell); m != nil {
				ds.MedianRows = num(m[1])
			}
			stats[entity][days[i]] = ds
		}
	}
	return order, stats
}

func extractEmptyFileStats(doc string) map[string]map[string]float64 {
	stats := make(map[string]map[string]float64)
	for _, line := range tableLines(doc, headingDaySummary) {
		if isSeparatorRow(line) || strings.Contains(line, "Row Statistics") {
			continue
		}
		cells := splitRow(line)
		if len(cells) < 3 {
			continue
		}
		dayStats := make(map[string]float64)
		for _, part := range strings.Split(cells[2], "<br>") {
			key, val, ok := strings.Cut(part, ":")
			if !ok {
				continue
			}
			key = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(key), "•", ""))
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				continue
			}
			dayStats[key] = f
		}
		stats[cells[0]] = dayStats
	}
	return stats
}

// tableLines returns the contiguous block of table rows following the given
// heading: scan forward from the heading to the first "|" line, then collect
// until the first non-table line. The scan aborts at the next section heading
// so an absent table never captures rows belonging to a later one.
func tableLines(doc, heading string) []string {
	idx := strings.Index(doc, heading)
	if idx < 0 {
		return nil
	}
	lines := strings.Split(doc[idx:], "\n")

	var rows []string
	collecting := false
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") {
			collecting = true
			rows = append(rows, trimmed)
			continue
		}
		if collecting {
			break
		}
		if strings.HasPrefix(trimmed, "#") {
			break
		}
	}
	return rows
}

// splitRow splits a markdown table row into trimmed, non-empty cells.
func splitRow(line string) []string {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func isSeparatorRow(line string) bool {
	return strings.Contains(line, "---")
}

// num coerces a table cell to a number; malformed cells become 0 rather than
// failing the section.
func num(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
