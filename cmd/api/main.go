package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naveen-dev/devices-api/internal/config"
	"github.com/naveen-dev/devices-api/internal/database"
	"github.com/naveen-dev/devices-api/internal/devices"
	"github.com/naveen-dev/devices-api/internal/handlers"
	"github.com/naveen-dev/devices-api/internal/middleware"
	"github.com/naveen-dev/devices-api/internal/models"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Synchronize schema
	if err := db.AutoMigrate(&models.Device{}); err != nil {
		logger.Warn().Err(err).Msg("schema migration warning")
	}

	// 4. Wire the device service and router
	store := devices.NewGormStore(db)
	service := devices.NewService(store)
	router := handlers.NewRouter(service)

	// Middleware chain, outermost first
	var handler http.Handler = router
	handler = middleware.APIKeyMiddleware(cfg.APIKey)(handler)
	handler = middleware.CORSMiddleware(handler)
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RequestIDMiddleware(handler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// 5. Start server with graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	sig := <-shutdown
	logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Close database (this also stops embedded PostgreSQL)
	if err := db.Close(); err != nil {
		logger.Error().Err(err).Msg("database close error")
	}

	logger.Info().Msg("shutdown complete")
}
