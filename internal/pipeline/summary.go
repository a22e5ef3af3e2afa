package pipeline

import "log"

// FileSkip records one input file that was not ingested and why. Skips are
// the expected steady state for foreign files in the data directory, not
// failures of the batch.
type FileSkip struct {
	Name   string
	Reason string
}

// Summary enumerates the outcome of the parse stage: every file either
// parsed or skipped, with row-level diagnostics aggregated.
type Summary struct {
	FilesParsed  []string
	FilesSkipped []FileSkip
	RowsSkipped  int
	Passes       int
	Buckets      int
}

// Log prints the end-of-run accounting, successes and skips both.
func (s *Summary) Log(logger *log.Logger) {
	logger.Printf("parse stage: %d files parsed, %d skipped, %d passes into %d buckets (%d rows dropped)",
		len(s.FilesParsed), len(s.FilesSkipped), s.Passes, s.Buckets, s.RowsSkipped)
	for _, skip := range s.FilesSkipped {
		logger.Printf("  skipped %s: %s", skip.Name, skip.Reason)
	}
}
