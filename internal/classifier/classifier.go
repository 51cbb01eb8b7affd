// Package classifier implements origin classification for product listings:
// the tri-state "made in China" decision with its secondary details, plus
// category guessing used for sourcing advice and sales baselines.
package classifier

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/sales"
	"github.com/tariffhunter/origin-classifier/internal/sourcing"
	"github.com/tariffhunter/origin-classifier/internal/telemetry"
)

// Config holds configuration for the orchestrating classifier.
type Config struct {
	Version string
}

// Classifier orchestrates origin analysis, category guessing, sourcing
// advice and the sales estimate for one product.
type Classifier struct {
	origin    *OriginClassifier
	advisor   *sourcing.Advisor
	telemetry *telemetry.Provider
	log       logger.Logger
	version   string
}

// NewClassifier creates the orchestrating classifier. telemetry may be nil.
func NewClassifier(
	origin *OriginClassifier,
	advisor *sourcing.Advisor,
	tp *telemetry.Provider,
	log logger.Logger,
	cfg Config,
) *Classifier {
	return &Classifier{
		origin:    origin,
		advisor:   advisor,
		telemetry: tp,
		log:       log,
		version:   cfg.Version,
	}
}

// Version returns the classifier version recorded on results.
func (c *Classifier) Version() string {
	return c.version
}

// Classify runs the full analysis for one product. Classification itself
// never fails; an unavailable embedding backend surfaces as the Unknown
// origin outcome on the result.
func (c *Classifier) Classify(ctx context.Context, product *domain.Product) *domain.ClassificationResult {
	startTime := time.Now()

	origin := c.origin.Classify(ctx, product.Title, product.Description)
	category := GuessCategory(product.Title, product.Description)

	result := &domain.ClassificationResult{
		ProductID:         product.ID,
		Origin:            origin,
		Category:          category,
		Sourcing:          c.advisor.Profile(category),
		ClassifierVersion: c.version,
		ProcessingTimeMs:  time.Since(startTime).Milliseconds(),
		ClassifiedAt:      time.Now(),
	}

	// Unknown ranks fall back to the category's typical rank.
	rank := product.BestSellerRank
	if rank <= 0 {
		rank = sales.TypicalRank(category)
	}
	result.EstimatedMonthlySales = sales.EstimateMonthlySales(rank)

	c.record(origin, result.ProcessingTimeMs)

	c.log.Info("product classified",
		logger.String("product_id", product.ID),
		logger.String("made_in_china", origin.MadeInChina),
		logger.Float64("confidence", origin.Confidence),
		logger.String("category", category),
		logger.Int64("processing_time_ms", result.ProcessingTimeMs),
	)

	return result
}

func (c *Classifier) record(origin *domain.OriginResult, processingMs int64) {
	if c.telemetry == nil {
		return
	}
	c.telemetry.Metrics.ClassificationsTotal.WithLabelValues(origin.MadeInChina).Inc()
	c.telemetry.Metrics.ProcessingDuration.Observe(float64(processingMs) / 1000)
	if origin.MadeInChina == domain.OriginUnknown {
		c.telemetry.Metrics.EmbedFailures.Inc()
	}
}

// TraceClassify wraps Classify in a span when tracing is configured.
func (c *Classifier) TraceClassify(ctx context.Context, product *domain.Product) *domain.ClassificationResult {
	if c.telemetry == nil {
		return c.Classify(ctx, product)
	}
	ctx, span := c.telemetry.Tracer.Start(ctx, "classifier.Classify")
	defer span.End()
	result := c.Classify(ctx, product)
	span.SetAttributes(
		attribute.String("origin.outcome", result.Origin.MadeInChina),
		attribute.Float64("origin.confidence", result.Origin.Confidence),
		attribute.String("product.category", result.Category),
	)
	return result
}
