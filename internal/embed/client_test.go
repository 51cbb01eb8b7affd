package embed

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newEmbedServer(t *testing.T, vectors [][]float32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(EmbedResponse{Vectors: vectors, ModelVersion: "test-1"})
	}))
}

func TestEncode(t *testing.T) {
	vectors := [][]float32{{1, 0}, {0, 1}}
	server := newEmbedServer(t, vectors)
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Encode(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(got) != 2 || got[0][0] != 1 || got[1][1] != 1 {
		t.Errorf("Encode vectors = %v, want %v", got, vectors)
	}
}

func TestEncodeVectorCountMismatch(t *testing.T) {
	server := newEmbedServer(t, [][]float32{{1, 0}})
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Encode(context.Background(), []string{"a", "b"}); err == nil {
		t.Error("expected error on vector count mismatch")
	}
}

func TestEncodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Encode(context.Background(), []string{"a"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Encode error = %v, want ErrUnavailable on 503 response", err)
	}
}

func TestEncodeUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Encode(context.Background(), []string{"a"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Encode error = %v, want ErrUnavailable when service is unreachable", err)
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"model_version": "test-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health: %v", err)
	}
}

func TestHealthUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	err := client.Health(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Health error = %v, want ErrUnavailable", err)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
