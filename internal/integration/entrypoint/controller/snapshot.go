// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// SnapshotController handles snapshot maintenance endpoints.
type SnapshotController struct {
	refreshUseCase *dashboard.RefreshSnapshotUseCase
}

// NewSnapshotController creates a new snapshot controller instance.
func NewSnapshotController(refreshUseCase *dashboard.RefreshSnapshotUseCase) *SnapshotController {
	return &SnapshotController{refreshUseCase: refreshUseCase}
}

// Refresh handles POST /snapshot/refresh requests.
func (c *SnapshotController) Refresh(ctx *gin.Context) {
	output, err := c.refreshUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRefreshSnapshotResponse(output))
}
