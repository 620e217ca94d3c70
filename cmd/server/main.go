package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"billrecon/internal/config"
	"billrecon/internal/handler"
	"billrecon/internal/logger"
	"billrecon/internal/metrics"
	"billrecon/internal/port"
	"billrecon/internal/router"
	"billrecon/internal/service"
	s3storage "billrecon/internal/storage/s3"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logr := logger.New(cfg.Log)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize storage
	var archive port.SourceArchive
	if cfg.S3.Archive {
		archive, err = s3storage.NewS3Archive(context.Background(), &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 archive: %w", err)
		}
		logr.WithField("bucket", cfg.S3.Bucket).Info("archiving uploaded spreadsheets")
	}

	// Initialize services
	billingSvc := service.NewBillingService(archive, m, logr, &cfg.Upload, &cfg.Session)

	// Initialize handlers
	sessionH := handler.NewSessionHandler(billingSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, logr, sessionH, healthH)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logr.WithField("addr", cfg.Server.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logr.WithField("signal", sig.String()).Info("received shutdown signal")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logr.Info("server stopped")
	return nil
}
