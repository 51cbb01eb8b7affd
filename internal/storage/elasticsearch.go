// Package storage indexes classified products into Elasticsearch for the
// dashboard's search and aggregation views. Indexing is optional and always
// best-effort: a failed write never fails a classification.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/tariffhunter/origin-classifier/internal/config"
	"github.com/tariffhunter/origin-classifier/internal/domain"
)

// ClassifiedProductDoc is the Elasticsearch document for one classification.
type ClassifiedProductDoc struct {
	domain.Product

	Result *domain.ClassificationResult `json:"result"`
}

// ElasticsearchIndexer writes classified products to a single index.
type ElasticsearchIndexer struct {
	client *es.Client
	index  string
}

// NewElasticsearchIndexer creates an indexer from config.
func NewElasticsearchIndexer(cfg config.ElasticsearchConfig) (*ElasticsearchIndexer, error) {
	client, err := es.NewClient(es.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &ElasticsearchIndexer{client: client, index: cfg.Index}, nil
}

// Index writes one classified product, keyed by product ID so re-runs
// overwrite the previous classification.
func (s *ElasticsearchIndexer) Index(ctx context.Context, product *domain.Product, result *domain.ClassificationResult) error {
	doc := ClassifiedProductDoc{Product: *product, Result: result}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal classified product: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(body),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(product.ID),
	)
	if err != nil {
		return fmt.Errorf("index classified product: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index classified product: %s", res.String())
	}
	return nil
}
