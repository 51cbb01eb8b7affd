package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tariffhunter/origin-classifier/internal/bootstrap"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, log, err := bootstrap.Load()
	if err != nil {
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting origin classifier HTTP server",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	comps, err := bootstrap.NewHTTPComponents(cfg, log)
	if err != nil {
		log.Error("Startup failed", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = comps.DB.Close() }()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- comps.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("Server error", logger.Error(err))
		os.Exit(1)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := comps.Server.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", logger.Error(err))
			os.Exit(1)
		}

		log.Info("Server stopped gracefully")
	}
}
