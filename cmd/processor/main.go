package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tariffhunter/origin-classifier/internal/bootstrap"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/processor"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "input CSV of products (title, description, ...)")
		outputPath = flag.String("output", "classified_products.csv", "output CSV path")
	)
	flag.Parse()

	cfg, log, err := bootstrap.Load()
	if err != nil {
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *inputPath == "" {
		log.Error("Missing required -input flag")
		flag.Usage()
		os.Exit(2)
	}

	log.Info("Starting bulk classification",
		logger.String("input", *inputPath),
		logger.String("output", *outputPath),
		logger.Int("concurrency", cfg.Service.Concurrency),
	)

	comps, err := bootstrap.NewClassifierComponents(cfg, log)
	if err != nil {
		log.Error("Startup failed", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := processor.NewCSVPipeline(comps.Batch, log)
	if err := pipeline.Run(ctx, *inputPath, *outputPath); err != nil {
		log.Error("Bulk classification failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("Bulk classification complete", logger.String("output", *outputPath))
}
