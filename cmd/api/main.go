// Package main is the entry point for the ledger API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"ledger_source", cfg.Ledger.Source,
	)
	if cfg.IsProduction() && !cfg.JWT.Required {
		slog.Warn("API authentication is disabled in production", "hint", "set JWT_REQUIRED=true")
	}

	var (
		gormDB          *gorm.DB
		dbHealthChecker func() bool
	)

	// The remote ledger source needs no database.
	if cfg.Ledger.Source == config.LedgerSourceDatabase {
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			slog.Warn("Database connection failed, running without database",
				"error", err,
			)
			dbHealthChecker = func() bool { return false }
		} else {
			if err := database.AutoMigrate(model.All()...); err != nil {
				slog.Error("Failed to run database migrations", "error", err)
				os.Exit(1)
			}
			slog.Info("Database migrations completed successfully")

			gormDB = database.DB()
			dbHealthChecker = database.HealthCheck
			defer func() {
				if err := database.Close(); err != nil {
					slog.Error("Failed to close database connection", "error", err)
				}
			}()
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	services, err := dependency.NewServices(ctx, cfg, gormDB)
	if err != nil {
		slog.Error("Failed to initialize ledger services", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := services.Close(); err != nil {
			slog.Error("Failed to close ledger services", "error", err)
		}
	}()

	injector := dependency.NewInjector(cfg, services, dbHealthChecker)
	engine := injector.Router.Setup(cfg.Server.Environment)

	go func() {
		if err := services.WatchLedgerChanges(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Ledger change consumer stopped", "error", err)
		}
	}()

	go func() {
		ticker := time.NewTicker(cfg.Server.ImportRateWin)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				injector.ImportRateLimiter.Cleanup()
			}
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
