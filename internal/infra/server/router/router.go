// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	dashboardController   *controller.DashboardController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	snapshotController    *controller.SnapshotController
	importRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// authMiddleware may be nil, in which case the API is served without authentication.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	snapshotController *controller.SnapshotController,
	importRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		dashboardController:   dashboardController,
		transactionController: transactionController,
		budgetController:      budgetController,
		snapshotController:    snapshotController,
		importRateLimiter:     importRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("", r.dashboardController.Get)
		dashboard.GET("/export", r.dashboardController.Export)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.DELETE("/:id", r.transactionController.Delete)

		importHandlers := []gin.HandlerFunc{r.transactionController.Import}
		if r.importRateLimiter != nil {
			importHandlers = append([]gin.HandlerFunc{r.importRateLimiter.Middleware()}, importHandlers...)
		}
		transactions.POST("/import", importHandlers...)
	}

	budgets := v1.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.PUT("", r.budgetController.Upsert)
		budgets.GET("/progress", r.budgetController.Progress)
	}

	v1.POST("/snapshot/refresh", r.snapshotController.Refresh)
}
