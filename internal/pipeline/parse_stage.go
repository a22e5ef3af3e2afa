// Package pipeline orchestrates the one-shot batch: raw exports → parser
// and classifier → result store → metrics engine → CSV tables.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"maritime-access-lab/internal/classify"
	"maritime-access-lab/internal/stkaccess"
	"maritime-access-lab/internal/store"
)

// ParseStage ingests every CSV export in DataDir into a result store and
// writes the interchange file. Individual file failures are reported and
// skipped; only an unwritable interchange file fails the stage.
type ParseStage struct {
	DataDir   string
	StorePath string
	Logger    *log.Logger
}

// Run executes the stage and returns the built store with its summary.
func (p *ParseStage) Run(ctx context.Context) (*store.Store, *Summary, error) {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	entries, err := os.ReadDir(p.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("read data dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	logger.Printf("found %d access files in %s", len(names), p.DataDir)

	s := store.New()
	summary := &Summary{}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		dests, err := classify.Classify(name)
		if err != nil {
			summary.FilesSkipped = append(summary.FilesSkipped, FileSkip{Name: name, Reason: err.Error()})
			logger.Printf("skip %s: %v", name, err)
			continue
		}

		result, err := stkaccess.ParseFile(filepath.Join(p.DataDir, name))
		if err != nil {
			summary.FilesSkipped = append(summary.FilesSkipped, FileSkip{Name: name, Reason: err.Error()})
			logger.Printf("skip %s: %v", name, err)
			continue
		}

		// One parse feeds every destination; transit files name several
		// ships sharing a single series.
		for _, dest := range dests {
			key := store.BucketKey{
				Target:        dest.Target,
				Sensor:        dest.Sensor,
				Constellation: dest.Constellation,
			}
			s.Add(key, dest.Kind, result.Events)
		}

		summary.FilesParsed = append(summary.FilesParsed, name)
		summary.RowsSkipped += len(result.Skips)
		summary.Passes += len(result.Events) * len(dests)
		logger.Printf("parsed %s: %d passes, %d satellites, %d rows dropped",
			name, len(result.Events), result.Satellites, len(result.Skips))
	}

	summary.Buckets = s.BucketCount()

	if p.StorePath != "" {
		if err := s.Save(p.StorePath); err != nil {
			return nil, nil, fmt.Errorf("write interchange: %w", err)
		}
		logger.Printf("interchange written to %s", p.StorePath)
	}

	return s, summary, nil
}
