// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles budget limit endpoints.
type BudgetController struct {
	listUseCase     *budget.ListBudgetLimitsUseCase
	upsertUseCase   *budget.UpsertBudgetLimitUseCase
	progressUseCase *budget.GetBudgetProgressUseCase
	now             func() time.Time
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetLimitsUseCase,
	upsertUseCase *budget.UpsertBudgetLimitUseCase,
	progressUseCase *budget.GetBudgetProgressUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		upsertUseCase:   upsertUseCase,
		progressUseCase: progressUseCase,
		now:             time.Now,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetLimitListResponse(output))
}

// Upsert handles PUT /budgets requests. The limit is keyed by category.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	var req dto.UpsertBudgetLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetLimitInput{
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetLimitResponse(*output.BudgetLimit))
}

// Progress handles GET /budgets/progress requests.
func (c *BudgetController) Progress(ctx *gin.Context) {
	month, err := parseMonth(ctx, ledger.MonthOf(c.now()))
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), budget.GetBudgetProgressInput{Month: month})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetProgressResponse(output))
}
