// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Injector holds the HTTP dependencies of the API server.
type Injector struct {
	Config            *config.Config
	Services          *Services
	ImportRateLimiter *middleware.RateLimiter
	Router            *router.Router
}

// NewInjector creates the controllers and router on top of services.
// dbHealthChecker may be nil when no database is used.
func NewInjector(cfg *config.Config, services *Services, dbHealthChecker func() bool) *Injector {
	healthController := controller.NewHealthController(dbHealthChecker, cfg.Ledger.Source, services.CacheEnabled)

	dashboardController := controller.NewDashboardController(
		services.GetDashboard,
		services.ExportDashboard,
		cfg.Ledger.DefaultPageSize,
	)

	transactionController := controller.NewTransactionController(
		services.ListTransactions,
		services.CreateTransaction,
		services.DeleteTransaction,
		services.ImportStatement,
		cfg.Ledger.DefaultPageSize,
		cfg.Server.MaxUploadBytes,
	)

	budgetController := controller.NewBudgetController(
		services.ListBudgetLimits,
		services.UpsertBudgetLimit,
		services.BudgetProgress,
	)

	snapshotController := controller.NewSnapshotController(services.RefreshSnapshot)

	importRateLimiter := middleware.NewRateLimiter(cfg.Server.ImportRateMax, cfg.Server.ImportRateWin)

	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.Required {
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	r := router.NewRouter(
		healthController,
		dashboardController,
		transactionController,
		budgetController,
		snapshotController,
		importRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		Services:          services,
		ImportRateLimiter: importRateLimiter,
		Router:            r,
	}
}
