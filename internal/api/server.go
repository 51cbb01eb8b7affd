package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tariffhunter/origin-classifier/internal/logger"
	"github.com/tariffhunter/origin-classifier/internal/telemetry"
)

// Default timeout values.
const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server wraps the HTTP server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

// NewServer creates the HTTP server with all routes registered. tp may be
// nil to disable the /metrics endpoint.
func NewServer(handler *Handler, cfg ServerConfig, tp *telemetry.Provider, log logger.Logger) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = defaultWriteTimeout
	}

	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, handler, tp)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		log: log,
	}
}

// Start blocks serving HTTP until the server stops.
func (s *Server) Start() error {
	s.log.Info("http server listening", logger.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	v1 := router.Group("/api/v1")

	classify := v1.Group("/classify")
	classify.POST("", handler.Classify)                       // POST /api/v1/classify
	classify.POST("/batch", handler.ClassifyBatch)            // POST /api/v1/classify/batch
	classify.GET("/:product_id", handler.GetClassification)   // GET  /api/v1/classify/:product_id

	v1.GET("/history", handler.ListHistory)                   // GET  /api/v1/history
	v1.GET("/stats", handler.GetStats)                        // GET  /api/v1/stats
	v1.GET("/sourcing/:category", handler.GetSourcingProfile) // GET  /api/v1/sourcing/:category
}
