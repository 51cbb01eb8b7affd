package bootstrap

import (
	"fmt"

	"github.com/tariffhunter/origin-classifier/internal/classifier"
	"github.com/tariffhunter/origin-classifier/internal/config"
	"github.com/tariffhunter/origin-classifier/internal/embed"
	"github.com/tariffhunter/origin-classifier/internal/geo"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/processor"
	"github.com/tariffhunter/origin-classifier/internal/sourcing"
	"github.com/tariffhunter/origin-classifier/internal/telemetry"
)

// ClassifierComponents holds the classification pipeline.
type ClassifierComponents struct {
	Embedder   *embed.Client
	Classifier *classifier.Classifier
	Advisor    *sourcing.Advisor
	Batch      *processor.BatchProcessor
	Telemetry  *telemetry.Provider
}

// NewClassifierComponents wires the embedding client, place recognizer,
// sourcing advisor and batch processor into a ready classifier.
func NewClassifierComponents(cfg *config.Config, log logger.Logger) (*ClassifierComponents, error) {
	tp := telemetry.NewProvider()

	embedder := embed.NewClient(cfg.Embedding.URL)
	places := geo.NewRecognizer()

	advisor, err := sourcing.NewAdvisor(cfg.Sourcing.ProfilesPath, log)
	if err != nil {
		return nil, fmt.Errorf("load sourcing profiles: %w", err)
	}

	origin := classifier.NewOriginClassifier(embedder, places, log)
	c := classifier.NewClassifier(origin, advisor, tp, log, classifier.Config{
		Version: cfg.Service.Version,
	})

	limiter := processor.NewRateLimiter(cfg.Embedding.RPS, log)
	batch := processor.NewBatchProcessor(c, limiter, tp, cfg.Service.Concurrency, log)

	log.Info("Classifier initialized",
		logger.String("version", cfg.Service.Version),
		logger.Int("concurrency", cfg.Service.Concurrency),
		logger.String("embedding_url", cfg.Embedding.URL),
	)

	return &ClassifierComponents{
		Embedder:   embedder,
		Classifier: c,
		Advisor:    advisor,
		Batch:      batch,
		Telemetry:  tp,
	}, nil
}
