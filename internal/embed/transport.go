// Package embed provides the HTTP client for the sentence-embedding sidecar
// and the cosine similarity used to compare its vectors.
package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

// EmbedRequest is the request body for POST /embed.
type EmbedRequest struct {
	Texts []string `json:"texts"`
}

// EmbedResponse is the response body from POST /embed.
type EmbedResponse struct {
	Vectors      [][]float32 `json:"vectors"`
	ModelVersion string      `json:"model_version,omitempty"`
}

// healthResponse is the JSON shape returned by GET /health.
type healthResponse struct {
	ModelVersion string `json:"model_version"`
}

// doEmbed sends POST /embed to baseURL and decodes the response.
// Returns latency in milliseconds alongside any error.
func doEmbed(ctx context.Context, baseURL string, req *EmbedRequest) (*EmbedResponse, int64, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: defaultTimeout}
	resp, err := client.Do(httpReq)
	latencyMs := time.Since(start).Milliseconds()
	if err != nil {
		return nil, latencyMs, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, latencyMs, fmt.Errorf("embedding service returned %d", resp.StatusCode)
	}

	var out EmbedResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return nil, latencyMs, fmt.Errorf("decode response: %w", decodeErr)
	}

	return &out, latencyMs, nil
}

// doHealth calls GET /health at baseURL and returns reachability, latency,
// and the reported model version.
func doHealth(ctx context.Context, baseURL string) (reachable bool, latencyMs int64, modelVersion string, err error) {
	start := time.Now()

	httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", http.NoBody)
	if reqErr != nil {
		return false, 0, "", fmt.Errorf("create request: %w", reqErr)
	}

	client := &http.Client{Timeout: defaultTimeout}
	resp, doErr := client.Do(httpReq)
	latencyMs = time.Since(start).Milliseconds()
	if doErr != nil {
		return false, latencyMs, "", fmt.Errorf("service unreachable: %w", doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, latencyMs, "", fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}

	reachable = true
	var healthResp healthResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&healthResp); decodeErr == nil {
		modelVersion = healthResp.ModelVersion
	}
	return reachable, latencyMs, modelVersion, nil
}
