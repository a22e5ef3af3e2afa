// Package main runs the full batch: parse stage then metrics stage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"maritime-access-lab/internal/config"
	"maritime-access-lab/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	dataDir := flag.String("data-dir", "", "Override: directory with raw access CSV exports")
	resultsDir := flag.String("results-dir", "", "Override: directory for metric CSV tables")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *resultsDir != "" {
		cfg.ResultsDir = *resultsDir
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling pipeline...\n", sig)
		cancel()
	}()

	logger := log.New(os.Stdout, "[pipeline] ", log.LstdFlags)

	summary, err := pipeline.New(cfg, logger).Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nBatch complete: %d files parsed, %d skipped, %d passes\n",
		len(summary.FilesParsed), len(summary.FilesSkipped), summary.Passes)
	fmt.Printf("Results in %s\n", cfg.ResultsDir)
}
