// Package processor runs classifications over many products: an in-memory
// worker pool for API batches and a CSV pipeline for bulk files.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/tariffhunter/origin-classifier/internal/classifier"
	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/telemetry"
)

const defaultConcurrency = 10

// ProcessResult holds the result of processing a single product.
type ProcessResult struct {
	Product *domain.Product              `json:"product"`
	Result  *domain.ClassificationResult `json:"result"`
}

// BatchProcessor classifies products in parallel using a worker pool. Each
// classification only reads shared state, so workers need no coordination
// beyond the job and result channels.
type BatchProcessor struct {
	classifier  *classifier.Classifier
	limiter     *RateLimiter
	telemetry   *telemetry.Provider
	concurrency int
	log         logger.Logger
}

// NewBatchProcessor creates a batch processor. limiter and telemetry may be
// nil.
func NewBatchProcessor(
	c *classifier.Classifier,
	limiter *RateLimiter,
	tp *telemetry.Provider,
	concurrency int,
	log logger.Logger,
) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchProcessor{
		classifier:  c,
		limiter:     limiter,
		telemetry:   tp,
		concurrency: concurrency,
		log:         log,
	}
}

// Process classifies all products and returns results in input order.
func (b *BatchProcessor) Process(ctx context.Context, products []*domain.Product) ([]*ProcessResult, error) {
	if len(products) == 0 {
		return []*ProcessResult{}, nil
	}

	b.log.Info("starting batch processing",
		logger.Int("batch_size", len(products)),
		logger.Int("concurrency", b.concurrency),
	)
	if b.telemetry != nil {
		b.telemetry.Metrics.BatchSize.Observe(float64(len(products)))
	}

	startTime := time.Now()

	type job struct {
		index   int
		product *domain.Product
	}

	jobs := make(chan job, len(products))
	results := make([]*ProcessResult, len(products))

	var wg sync.WaitGroup
	for range b.concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = b.processOne(ctx, j.product)
			}
		}()
	}

	for i, product := range products {
		jobs <- job{index: i, product: product}
	}
	close(jobs)
	wg.Wait()

	b.log.Info("batch processing complete",
		logger.Int("batch_size", len(products)),
		logger.Duration("duration", time.Since(startTime)),
	)

	return results, nil
}

func (b *BatchProcessor) processOne(ctx context.Context, product *domain.Product) *ProcessResult {
	if b.telemetry != nil {
		b.telemetry.Metrics.ActiveWorkers.Inc()
		defer b.telemetry.Metrics.ActiveWorkers.Dec()
	}

	// Every classification hits the embedding sidecar once, so the limiter
	// is applied per product rather than per batch.
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			b.log.Warn("rate limiter wait interrupted",
				logger.String("product_id", product.ID),
				logger.Error(err))
		}
	}

	return &ProcessResult{
		Product: product,
		Result:  b.classifier.TraceClassify(ctx, product),
	}
}
