package processor

import (
	"context"
	"fmt"
	"testing"

	"github.com/tariffhunter/origin-classifier/internal/classifier"
	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/geo"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/sourcing"
	"github.com/tariffhunter/origin-classifier/internal/testhelpers"
)

func newTestBatchProcessor(t *testing.T, similarity float64, concurrency int) *BatchProcessor {
	t.Helper()

	log := logger.NewNop()
	advisor, err := sourcing.NewAdvisor("", log)
	if err != nil {
		t.Fatalf("NewAdvisor: %v", err)
	}
	origin := classifier.NewOriginClassifier(
		&testhelpers.StubEmbedder{Similarity: similarity}, geo.NewRecognizer(), log)
	c := classifier.NewClassifier(origin, advisor, nil, log, classifier.Config{Version: "test"})

	return NewBatchProcessor(c, nil, nil, concurrency, log)
}

func TestProcessPreservesOrder(t *testing.T) {
	b := newTestBatchProcessor(t, 0.5, 4)

	products := make([]*domain.Product, 25)
	for i := range products {
		products[i] = &domain.Product{
			ID:    fmt.Sprintf("P%03d", i),
			Title: fmt.Sprintf("Widget %d", i),
		}
	}

	results, err := b.Process(context.Background(), products)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(results) != len(products) {
		t.Fatalf("got %d results, want %d", len(results), len(products))
	}
	for i, result := range results {
		if result == nil || result.Product.ID != products[i].ID {
			t.Errorf("results[%d] = %+v, want product %s", i, result, products[i].ID)
		}
		if result.Result == nil || result.Result.ProductID != products[i].ID {
			t.Errorf("results[%d].Result missing or mismatched", i)
		}
	}
}

func TestProcessEmptyBatch(t *testing.T) {
	b := newTestBatchProcessor(t, 0.5, 2)

	results, err := b.Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestProcessMoreWorkersThanProducts(t *testing.T) {
	b := newTestBatchProcessor(t, 0.8, 16)

	results, err := b.Process(context.Background(), []*domain.Product{
		{ID: "only", Title: "Single Widget"},
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(results) != 1 || results[0].Result == nil {
		t.Fatalf("results = %+v, want one classified product", results)
	}
}

func TestNewBatchProcessorDefaultsConcurrency(t *testing.T) {
	b := newTestBatchProcessor(t, 0.5, 0)
	if b.concurrency != defaultConcurrency {
		t.Errorf("concurrency = %d, want %d", b.concurrency, defaultConcurrency)
	}
}
