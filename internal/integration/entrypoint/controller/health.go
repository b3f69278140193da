// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	ledgerSource    string
	cacheEnabled    bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	LedgerSource string `json:"ledger_source"`
	Cache        string `json:"cache"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// dbHealthChecker may be nil when the ledger is served remotely.
func NewHealthController(dbHealthChecker func() bool, ledgerSource string, cacheEnabled bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		ledgerSource:    ledgerSource,
		cacheEnabled:    cacheEnabled,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	switch {
	case h.dbHealthChecker == nil:
		dbStatus = "unused"
	case h.dbHealthChecker():
		dbStatus = "connected"
	}

	cache := "disabled"
	if h.cacheEnabled {
		cache = "redis"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		Database:     dbStatus,
		LedgerSource: h.ledgerSource,
		Cache:        cache,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
