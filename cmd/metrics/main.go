// Package main runs only the metrics stage: interchange file → CSV tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"maritime-access-lab/internal/config"
	"maritime-access-lab/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	resultsDir := flag.String("results-dir", "", "Override: directory for metric CSV tables")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *resultsDir != "" {
		cfg.ResultsDir = *resultsDir
	}

	stage := pipeline.MetricsStage{
		StorePath:     filepath.Join(cfg.ParsedDir, cfg.StoreFile),
		ResultsDir:    cfg.ResultsDir,
		ScenarioStart: cfg.ScenarioStartTime(),
		PeriodSeconds: cfg.PeriodSeconds,
		Logger:        log.New(os.Stdout, "[metrics] ", log.LstdFlags),
	}

	if err := stage.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Metrics stage error: %v\n", err)
		os.Exit(1)
	}
}
