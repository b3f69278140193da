// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getUseCase      *dashboard.GetDashboardUseCase
	exportUseCase   *dashboard.ExportDashboardUseCase
	defaultPageSize int
	now             func() time.Time
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getUseCase *dashboard.GetDashboardUseCase,
	exportUseCase *dashboard.ExportDashboardUseCase,
	defaultPageSize int,
) *DashboardController {
	return &DashboardController{
		getUseCase:      getUseCase,
		exportUseCase:   exportUseCase,
		defaultPageSize: defaultPageSize,
		now:             time.Now,
	}
}

// Get handles GET /dashboard requests.
// Without a month parameter the current month is shown.
func (c *DashboardController) Get(ctx *gin.Context) {
	view, err := parseView(ctx, ledger.MonthOf(c.now()), c.defaultPageSize)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{View: view})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Export handles GET /dashboard/export requests.
func (c *DashboardController) Export(ctx *gin.Context) {
	view, err := parseView(ctx, ledger.MonthOf(c.now()), c.defaultPageSize)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), view)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
