package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tariffhunter/origin-classifier/internal/domain"
)

// ErrNotFound is returned when no history record exists for a product.
var ErrNotFound = errors.New("classification history not found")

// historySchema creates the history table when absent. Types are chosen to
// work on both sqlite and postgres.
const historySchema = `
CREATE TABLE IF NOT EXISTS classification_history (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id      TEXT NOT NULL,
	title           TEXT NOT NULL,
	made_in_china   TEXT NOT NULL,
	confidence      REAL NOT NULL,
	vulnerability   TEXT NOT NULL,
	likely_province TEXT NOT NULL DEFAULT '',
	likely_country  TEXT NOT NULL DEFAULT '',
	production_type TEXT NOT NULL DEFAULT '',
	supplier_tier   TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL,
	version         TEXT NOT NULL,
	processing_ms   INTEGER NOT NULL,
	classified_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_product ON classification_history (product_id);
`

// postgresHistorySchema mirrors historySchema using postgres identity syntax.
const postgresHistorySchema = `
CREATE TABLE IF NOT EXISTS classification_history (
	id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	product_id      TEXT NOT NULL,
	title           TEXT NOT NULL,
	made_in_china   TEXT NOT NULL,
	confidence      DOUBLE PRECISION NOT NULL,
	vulnerability   TEXT NOT NULL,
	likely_province TEXT NOT NULL DEFAULT '',
	likely_country  TEXT NOT NULL DEFAULT '',
	production_type TEXT NOT NULL DEFAULT '',
	supplier_tier   TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL,
	version         TEXT NOT NULL,
	processing_ms   BIGINT NOT NULL,
	classified_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_product ON classification_history (product_id);
`

// HistoryRepository persists classification history records.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a history repository and ensures the schema
// exists.
func NewHistoryRepository(db *sqlx.DB) (*HistoryRepository, error) {
	schema := historySchema
	if db.DriverName() == "postgres" {
		schema = postgresHistorySchema
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure history schema: %w", err)
	}
	return &HistoryRepository{db: db}, nil
}

// Create inserts a new classification history record.
func (r *HistoryRepository) Create(ctx context.Context, history *domain.ClassificationHistory) error {
	query := r.db.Rebind(`
		INSERT INTO classification_history (
			product_id, title, made_in_china, confidence, vulnerability,
			likely_province, likely_country, production_type, supplier_tier,
			category, version, processing_ms, classified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(
		ctx,
		query,
		history.ProductID,
		history.Title,
		history.MadeInChina,
		history.Confidence,
		history.Vulnerability,
		history.LikelyProvince,
		history.LikelyCountry,
		history.ProductionType,
		history.SupplierTier,
		history.Category,
		history.Version,
		history.ProcessingMs,
		history.ClassifiedAt,
	)
	if err != nil {
		return fmt.Errorf("create classification history: %w", err)
	}
	return nil
}

// LatestByProductID retrieves the most recent record for a product.
func (r *HistoryRepository) LatestByProductID(ctx context.Context, productID string) (*domain.ClassificationHistory, error) {
	var history domain.ClassificationHistory
	query := r.db.Rebind(`
		SELECT * FROM classification_history
		WHERE product_id = ?
		ORDER BY classified_at DESC, id DESC
		LIMIT 1
	`)

	if err := r.db.GetContext(ctx, &history, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get classification history: %w", err)
	}
	return &history, nil
}

// List returns the most recent records, newest first.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*domain.ClassificationHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	var histories []*domain.ClassificationHistory
	query := r.db.Rebind(`
		SELECT * FROM classification_history
		ORDER BY classified_at DESC, id DESC
		LIMIT ?
	`)

	if err := r.db.SelectContext(ctx, &histories, query, limit); err != nil {
		return nil, fmt.Errorf("list classification history: %w", err)
	}
	return histories, nil
}

// OutcomeStat is the aggregate for one origin outcome.
type OutcomeStat struct {
	Outcome       string  `db:"made_in_china" json:"outcome"`
	Count         int     `db:"count"         json:"count"`
	AvgConfidence float64 `db:"avg_confidence" json:"avg_confidence"`
}

// Stats aggregates outcome counts and average confidence.
func (r *HistoryRepository) Stats(ctx context.Context) ([]*OutcomeStat, error) {
	var stats []*OutcomeStat
	query := `
		SELECT made_in_china, COUNT(*) AS count, AVG(confidence) AS avg_confidence
		FROM classification_history
		GROUP BY made_in_china
		ORDER BY count DESC
	`

	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("aggregate classification stats: %w", err)
	}
	return stats, nil
}
