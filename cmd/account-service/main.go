package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acardenas/bank-ledger/internal/config"
	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/events"
	"github.com/acardenas/bank-ledger/internal/handlers"
	"github.com/acardenas/bank-ledger/internal/repository"
	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

func main() {
	// Optional .env for local development; environment wins in deployment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting account service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	nc, err := nats.Connect(cfg.NATS.URL,
		nats.Name("account-service"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		logger.Error("failed to connect to NATS", "error", err, "url", cfg.NATS.URL)
		os.Exit(1)
	}
	defer nc.Close()

	shadowRepo := repository.NewCustomerShadowRepository(database)
	registry := service.NewCustomerRegistryService(shadowRepo, logger)

	consumer := events.NewConsumer(nc, cfg.NATS.Subject, cfg.NATS.QueueGroup, registry, logger)
	if err := consumer.Start(); err != nil {
		logger.Error("failed to start customer event consumer", "error", err)
		os.Exit(1)
	}

	router := handlers.NewAccountRouter(database, cfg, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	if err := consumer.Stop(); err != nil {
		logger.Error("failed to drain event consumer", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
