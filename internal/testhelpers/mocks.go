// Package testhelpers provides shared test doubles.
package testhelpers

import (
	"context"
	"math"
	"sync"

	"github.com/tariffhunter/origin-classifier/internal/database"
	"github.com/tariffhunter/origin-classifier/internal/domain"
)

// StubEmbedder returns synthetic embeddings tuned so that the cosine
// similarity between the query text and every reference phrase equals
// Similarity. Err, when set, is returned instead.
type StubEmbedder struct {
	Similarity float64
	Err        error
}

func (s *StubEmbedder) Encode(_ context.Context, texts []string) ([][]float32, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sim := s.Similarity
	ortho := math.Sqrt(math.Max(0, 1-sim*sim))
	vectors := make([][]float32, len(texts))
	for i := range texts {
		if i == 0 {
			vectors[i] = []float32{1, 0}
			continue
		}
		vectors[i] = []float32{float32(sim), float32(ortho)}
	}
	return vectors, nil
}

// StubHealth implements the embedding health check.
type StubHealth struct {
	Err error
}

func (s *StubHealth) Health(_ context.Context) error {
	return s.Err
}

// InMemoryHistory is a map-backed classification history store.
type InMemoryHistory struct {
	mu      sync.Mutex
	nextID  int64
	Records []*domain.ClassificationHistory
	Err     error
}

func (m *InMemoryHistory) Create(_ context.Context, history *domain.ClassificationHistory) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	history.ID = m.nextID
	m.Records = append(m.Records, history)
	return nil
}

func (m *InMemoryHistory) LatestByProductID(_ context.Context, productID string) (*domain.ClassificationHistory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Records) - 1; i >= 0; i-- {
		if m.Records[i].ProductID == productID {
			return m.Records[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *InMemoryHistory) List(_ context.Context, limit int) ([]*domain.ClassificationHistory, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.ClassificationHistory, 0, limit)
	for i := len(m.Records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Records[i])
	}
	return out, nil
}

func (m *InMemoryHistory) Stats(_ context.Context) ([]*database.OutcomeStat, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	byOutcome := make(map[string]*database.OutcomeStat)
	order := make([]string, 0, 4)
	for _, rec := range m.Records {
		stat, ok := byOutcome[rec.MadeInChina]
		if !ok {
			stat = &database.OutcomeStat{Outcome: rec.MadeInChina}
			byOutcome[rec.MadeInChina] = stat
			order = append(order, rec.MadeInChina)
		}
		stat.AvgConfidence = (stat.AvgConfidence*float64(stat.Count) + rec.Confidence) / float64(stat.Count+1)
		stat.Count++
	}
	out := make([]*database.OutcomeStat, 0, len(order))
	for _, outcome := range order {
		out = append(out, byOutcome[outcome])
	}
	return out, nil
}

// CaptureIndexer records every indexed product.
type CaptureIndexer struct {
	mu      sync.Mutex
	Indexed []string
	Err     error
}

func (c *CaptureIndexer) Index(_ context.Context, product *domain.Product, _ *domain.ClassificationResult) error {
	if c.Err != nil {
		return c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Indexed = append(c.Indexed, product.ID)
	return nil
}
