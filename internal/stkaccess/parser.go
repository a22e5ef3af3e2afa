// Package stkaccess parses STK access-window CSV exports.
//
// An export is one or more stacked blocks, one per satellite. Each block
// opens with a header row ("Access", "Start Time", ...) and runs until the
// next header or end of file; trailing statistics rows close a block but
// are never explicit terminators. The scanner keeps a running satellite
// index starting at 0 and never regresses.
package stkaccess

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"maritime-access-lab/internal/domain"
)

// durationTolerance is the maximum allowed disagreement (seconds) between
// the source-reported duration and the duration derived from the parsed
// start/stop instants. Larger disagreement marks the row as corrupt.
const durationTolerance = 0.01

// timeLayouts are tried in order. STK writes "1 Jan 2026 00:00:00.000";
// fraction length varies between export settings.
var timeLayouts = []string{
	"2 Jan 2006 15:04:05.000",
	"2 Jan 2006 15:04:05.000000",
	"2 Jan 2006 15:04:05.0",
	"2 Jan 2006 15:04:05",
}

// statisticsPrefixes mark trailer rows appended by STK after each block.
var statisticsPrefixes = []string{
	"Min Duration",
	"Max Duration",
	"Mean Duration",
	"Total Duration",
	"Statistics",
}

// RowSkip records one data row that was dropped, with the source line
// number and the reason. Skips are diagnostics, not errors.
type RowSkip struct {
	Line   int
	Reason string
}

// Result is the outcome of parsing one export file. Events preserve input
// row order, which is not necessarily time order.
type Result struct {
	Events     []domain.AccessEvent
	Skips      []RowSkip
	Satellites int
}

// ParseFile parses a single export file. An unreadable file is a hard
// error; malformed content inside a readable file is recovered row by row.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open access file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse scans a comma-delimited access table from r.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &Result{}
	satelliteID := -1
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skips = append(result.Skips, RowSkip{Line: line, Reason: fmt.Sprintf("unreadable row: %v", err)})
			continue
		}

		row := cleanRow(record)
		if len(row) < 4 {
			// Blank rows and short fragments are expected noise.
			continue
		}

		if isHeaderRow(row) {
			satelliteID++
			continue
		}
		if isStatisticsRow(row[0]) {
			continue
		}

		event, reason := parseDataRow(row)
		if reason != "" {
			result.Skips = append(result.Skips, RowSkip{Line: line, Reason: reason})
			continue
		}
		if satelliteID < 0 {
			// Data before any header belongs to no block.
			result.Skips = append(result.Skips, RowSkip{Line: line, Reason: "data row before first header"})
			continue
		}
		event.SatelliteID = satelliteID
		result.Events = append(result.Events, event)
	}

	result.Satellites = satelliteID + 1
	return result, nil
}

// cleanRow trims whitespace and one layer of enclosing quotes from every
// cell and drops cells that end up empty.
func cleanRow(record []string) []string {
	cleaned := make([]string, 0, len(record))
	for _, cell := range record {
		cell = strings.TrimPrefix(cell, "\ufeff") // byte-order mark
		cell = strings.TrimSpace(cell)
		cell = strings.Trim(cell, `"`)
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cleaned = append(cleaned, cell)
		}
	}
	return cleaned
}

// isHeaderRow detects a block-opening header: "Access" in the first cell
// and "Start Time" somewhere in the second.
func isHeaderRow(row []string) bool {
	return row[0] == "Access" && len(row) >= 4 && strings.Contains(row[1], "Start Time")
}

func isStatisticsRow(firstCell string) bool {
	for _, prefix := range statisticsPrefixes {
		if strings.HasPrefix(firstCell, prefix) {
			return true
		}
	}
	return false
}

// parseDataRow interprets a cleaned row as [access_id, start, stop, duration].
// It returns a zero event and a non-empty reason when the row must be skipped.
func parseDataRow(row []string) (domain.AccessEvent, string) {
	passNum, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.AccessEvent{}, fmt.Sprintf("access id %q is not an integer", row[0])
	}

	start, err := parseTimestamp(row[1])
	if err != nil {
		return domain.AccessEvent{}, fmt.Sprintf("bad start time %q", row[1])
	}
	stop, err := parseTimestamp(row[2])
	if err != nil {
		return domain.AccessEvent{}, fmt.Sprintf("bad stop time %q", row[2])
	}
	if !stop.After(start) {
		return domain.AccessEvent{}, fmt.Sprintf("stop %q not after start %q", row[2], row[1])
	}

	reported, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return domain.AccessEvent{}, fmt.Sprintf("duration %q is not a number", row[3])
	}

	derived := stop.Sub(start).Seconds()
	if math.Abs(derived-reported) > durationTolerance {
		return domain.AccessEvent{}, fmt.Sprintf("duration mismatch: reported %.3fs, derived %.3fs", reported, derived)
	}

	return domain.AccessEvent{
		PassNum:     passNum,
		Start:       start,
		Stop:        stop,
		DurationSec: derived,
	}, ""
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
