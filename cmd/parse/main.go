// Package main runs only the parse stage: raw exports → interchange file.
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
	dataDir := flag.String("data-dir", "", "Override: directory with raw access CSV exports")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger := log.New(os.Stdout, "[parse] ", log.LstdFlags)
	stage := pipeline.ParseStage{
		DataDir:   cfg.DataDir,
		StorePath: filepath.Join(cfg.ParsedDir, cfg.StoreFile),
		Logger:    logger,
	}

	_, summary, err := stage.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse stage error: %v\n", err)
		os.Exit(1)
	}
	summary.Log(logger)
}
