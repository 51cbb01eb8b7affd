package embed

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrUnavailable indicates the embedding sidecar is unreachable.
var ErrUnavailable = errors.New("embedding service unavailable")

// Client is an HTTP client for the sentence-embedding sidecar.
type Client struct {
	baseURL string
}

// NewClient creates a new embedding client.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Encode sends texts to the sidecar and returns one vector per input text,
// in input order. Transport failures are wrapped in ErrUnavailable.
func (c *Client) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	resp, _, err := doEmbed(ctx, c.baseURL, &EmbedRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("encode: %w: %w", ErrUnavailable, err)
	}
	if len(resp.Vectors) != len(texts) {
		return nil, fmt.Errorf("encode: got %d vectors for %d texts", len(resp.Vectors), len(texts))
	}
	return resp.Vectors, nil
}

// Health checks if the embedding sidecar is healthy.
func (c *Client) Health(ctx context.Context) error {
	reachable, _, _, err := doHealth(ctx, c.baseURL)
	if err != nil {
		if !reachable {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	return nil
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched lengths and zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
