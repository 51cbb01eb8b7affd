package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tariffhunter/origin-classifier/internal/api"
	"github.com/tariffhunter/origin-classifier/internal/config"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

// HTTPComponents holds everything the HTTP server needs.
type HTTPComponents struct {
	DB     *sqlx.DB
	Server *api.Server
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	dbComps, err := SetupDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	clsComps, err := NewClassifierComponents(cfg, log)
	if err != nil {
		_ = dbComps.DB.Close()
		return nil, err
	}

	var indexer api.Indexer
	if es := SetupElasticsearch(cfg, log); es != nil {
		indexer = es
	}

	handler := api.NewHandler(
		clsComps.Classifier,
		clsComps.Batch,
		clsComps.Advisor,
		dbComps.History,
		indexer,
		clsComps.Embedder,
		cfg.Service.BatchLimit,
		log,
	)

	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, clsComps.Telemetry, log)

	return &HTTPComponents{DB: dbComps.DB, Server: server}, nil
}
