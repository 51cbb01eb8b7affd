// Package api exposes the classification service over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tariffhunter/origin-classifier/internal/classifier"
	"github.com/tariffhunter/origin-classifier/internal/database"
	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/processor"
	"github.com/tariffhunter/origin-classifier/internal/sourcing"
)

// HistoryStore is the persistence surface the handlers need.
type HistoryStore interface {
	Create(ctx context.Context, history *domain.ClassificationHistory) error
	LatestByProductID(ctx context.Context, productID string) (*domain.ClassificationHistory, error)
	List(ctx context.Context, limit int) ([]*domain.ClassificationHistory, error)
	Stats(ctx context.Context) ([]*database.OutcomeStat, error)
}

// Indexer pushes classified products to the search index.
type Indexer interface {
	Index(ctx context.Context, product *domain.Product, result *domain.ClassificationResult) error
}

// EmbedHealthChecker reports embedding sidecar health.
type EmbedHealthChecker interface {
	Health(ctx context.Context) error
}

// Handler handles HTTP requests for the classifier API.
type Handler struct {
	classifier *classifier.Classifier
	batch      *processor.BatchProcessor
	advisor    *sourcing.Advisor
	history    HistoryStore
	indexer    Indexer
	embedder   EmbedHealthChecker
	batchLimit int
	log        logger.Logger
}

// NewHandler creates a new API handler. history, indexer, and embedder are
// optional; nil disables the corresponding endpoints or side effects.
func NewHandler(
	c *classifier.Classifier,
	batch *processor.BatchProcessor,
	advisor *sourcing.Advisor,
	history HistoryStore,
	indexer Indexer,
	embedder EmbedHealthChecker,
	batchLimit int,
	log logger.Logger,
) *Handler {
	return &Handler{
		classifier: c,
		batch:      batch,
		advisor:    advisor,
		history:    history,
		indexer:    indexer,
		embedder:   embedder,
		batchLimit: batchLimit,
		log:        log,
	}
}

// ClassifyRequest is a single classification request.
type ClassifyRequest struct {
	Product *domain.Product `binding:"required" json:"product"`
}

// ClassifyResponse is a single classification response.
type ClassifyResponse struct {
	Result *domain.ClassificationResult `json:"result"`
}

// BatchClassifyRequest is a batch classification request.
type BatchClassifyRequest struct {
	Products []*domain.Product `binding:"required,min=1" json:"products"`
}

// BatchClassifyResponse is a batch classification response.
type BatchClassifyResponse struct {
	Results []*processor.ProcessResult `json:"results"`
	Total   int                        `json:"total"`
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid classification request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.classifier.TraceClassify(c.Request.Context(), req.Product)
	h.persist(c.Request.Context(), req.Product, result)

	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// ClassifyBatch handles POST /api/v1/classify/batch.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid batch classification request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.batchLimit > 0 && len(req.Products) > h.batchLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "batch size " + strconv.Itoa(len(req.Products)) +
				" exceeds limit " + strconv.Itoa(h.batchLimit),
		})
		return
	}

	results, err := h.batch.Process(c.Request.Context(), req.Products)
	if err != nil {
		h.log.Error("batch classification failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, result := range results {
		h.persist(c.Request.Context(), result.Product, result.Result)
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{Results: results, Total: len(results)})
}

// GetClassification handles GET /api/v1/classify/:product_id.
func (h *Handler) GetClassification(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "history storage disabled"})
		return
	}

	productID := c.Param("product_id")
	history, err := h.history.LatestByProductID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no classification for product " + productID})
			return
		}
		h.log.Error("history lookup failed",
			logger.String("product_id", productID),
			logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

// ListHistory handles GET /api/v1/history.
func (h *Handler) ListHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "history storage disabled"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	histories, err := h.history.List(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("history list failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": histories, "count": len(histories)})
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "history storage disabled"})
		return
	}

	stats, err := h.history.Stats(c.Request.Context())
	if err != nil {
		h.log.Error("stats aggregation failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcomes": stats})
}

// GetSourcingProfile handles GET /api/v1/sourcing/:category.
func (h *Handler) GetSourcingProfile(c *gin.Context) {
	category := c.Param("category")
	c.JSON(http.StatusOK, h.advisor.Profile(category))
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": h.classifier.Version()})
}

// ReadyCheck handles GET /ready. The service is ready when the embedding
// sidecar answers its health endpoint; without it every classification
// degrades to Unknown.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.embedder != nil {
		if err := h.embedder.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// persist stores history and indexes the result; both are best-effort.
func (h *Handler) persist(ctx context.Context, product *domain.Product, result *domain.ClassificationResult) {
	if h.history != nil {
		if err := h.history.Create(ctx, historyRecord(product, result)); err != nil {
			h.log.Warn("history write failed",
				logger.String("product_id", product.ID),
				logger.Error(err))
		}
	}
	if h.indexer != nil {
		if err := h.indexer.Index(ctx, product, result); err != nil {
			h.log.Warn("search index write failed",
				logger.String("product_id", product.ID),
				logger.Error(err))
		}
	}
}

func historyRecord(product *domain.Product, result *domain.ClassificationResult) *domain.ClassificationHistory {
	history := &domain.ClassificationHistory{
		ProductID:     product.ID,
		Title:         product.Title,
		MadeInChina:   result.Origin.MadeInChina,
		Confidence:    result.Origin.Confidence,
		Vulnerability: result.Origin.TariffVulnerability,
		Category:      result.Category,
		Version:       result.ClassifierVersion,
		ProcessingMs:  result.ProcessingTimeMs,
		ClassifiedAt:  result.ClassifiedAt,
	}
	if result.Origin.China != nil {
		history.LikelyProvince = result.Origin.China.LikelyProvince
		history.ProductionType = result.Origin.China.ProductionType
		history.SupplierTier = result.Origin.China.SupplierTier
	}
	if result.Origin.Other != nil {
		history.LikelyCountry = result.Origin.Other.LikelyCountry
	}
	return history
}
