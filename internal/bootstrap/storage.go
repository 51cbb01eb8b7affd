package bootstrap

import (
	"github.com/tariffhunter/origin-classifier/internal/config"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/storage"
)

// SetupElasticsearch creates the optional Elasticsearch indexer. Returns nil
// when indexing is disabled or the client cannot be built; the service runs
// without search indexing in that case.
func SetupElasticsearch(cfg *config.Config, log logger.Logger) *storage.ElasticsearchIndexer {
	if !cfg.Elasticsearch.Enabled {
		log.Info("Elasticsearch indexing disabled")
		return nil
	}

	indexer, err := storage.NewElasticsearchIndexer(cfg.Elasticsearch)
	if err != nil {
		log.Warn("Elasticsearch unavailable, continuing without indexing",
			logger.Error(err),
		)
		return nil
	}

	log.Info("Elasticsearch indexer ready",
		logger.String("index", cfg.Elasticsearch.Index),
	)
	return indexer
}
