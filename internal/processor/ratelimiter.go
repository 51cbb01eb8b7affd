package processor

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/tariffhunter/origin-classifier/internal/logger"
)

const defaultRPS = 50

// RateLimiter paces classification throughput so the embedding sidecar is
// not flooded by large batches.
type RateLimiter struct {
	limiter *rate.Limiter
	log     logger.Logger
}

// NewRateLimiter creates a rate limiter allowing rps requests per second
// with burst capacity equal to rps.
func NewRateLimiter(rps int, log logger.Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		log:     log,
	}
}

// Wait blocks until the limiter allows another request or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// SetLimit updates the requests-per-second limit.
func (r *RateLimiter) SetLimit(rps int) {
	r.limiter.SetLimit(rate.Limit(rps))
	r.log.Info("embedding rate limit updated", logger.Int("rps", rps))
}
