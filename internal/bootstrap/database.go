package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tariffhunter/origin-classifier/internal/config"
	"github.com/tariffhunter/origin-classifier/internal/database"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB      *sqlx.DB
	History *database.HistoryRepository
}

// SetupDatabase connects to the configured database and prepares the
// classification history repository.
func SetupDatabase(cfg *config.Config, log logger.Logger) (*DatabaseComponents, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	history, err := database.NewHistoryRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare history repository: %w", err)
	}

	log.Info("Database connected",
		logger.String("driver", cfg.Database.Driver),
	)

	return &DatabaseComponents{DB: db, History: history}, nil
}
