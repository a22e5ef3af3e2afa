package pipeline

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"maritime-access-lab/internal/config"
)

// Pipeline runs the full batch: parse stage, then metrics stage. Stages
// communicate through the interchange file so either can be re-run alone;
// a stage failure halts before the dependent stage consumes bad data,
// leaving earlier outputs on disk for inspection.
type Pipeline struct {
	parse   ParseStage
	metrics MetricsStage
	logger  *log.Logger
}

// New builds a pipeline from configuration.
func New(cfg *config.Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	storePath := filepath.Join(cfg.ParsedDir, cfg.StoreFile)
	return &Pipeline{
		parse: ParseStage{
			DataDir:   cfg.DataDir,
			StorePath: storePath,
			Logger:    logger,
		},
		metrics: MetricsStage{
			StorePath:     storePath,
			ResultsDir:    cfg.ResultsDir,
			ScenarioStart: cfg.ScenarioStartTime(),
			PeriodSeconds: cfg.PeriodSeconds,
			Logger:        logger,
		},
		logger: logger,
	}
}

// Run executes both stages and returns the parse summary.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	s, summary, err := p.parse.Run(ctx)
	if err != nil {
		return nil, err
	}
	summary.Log(p.logger)

	// The store is already in memory; recomputing from the interchange
	// file would only re-verify what Save just wrote.
	if err := p.metrics.Compute(ctx, s); err != nil {
		return summary, err
	}

	p.logger.Printf("pipeline complete in %s", time.Since(started).Round(time.Millisecond))
	return summary, nil
}
