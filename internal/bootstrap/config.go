package bootstrap

import (
	"fmt"
	"os"

	"github.com/tariffhunter/origin-classifier/internal/config"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

const defaultConfigPath = "config.yml"

// Load reads configuration and builds the application logger from it. The
// config file path comes from CONFIG_FILE, defaulting to config.yml; a
// missing file falls back to defaults plus environment overrides.
func Load() (*config.Config, logger.Logger, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	return cfg, log, nil
}
