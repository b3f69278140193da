// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpsertBudgetLimitRequest represents the request body for PUT /budgets.
type UpsertBudgetLimitRequest struct {
	Category     string          `json:"category" binding:"required"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}

// BudgetLimitResponse represents a configured monthly limit.
type BudgetLimitResponse struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	MonthlyLimit string `json:"monthly_limit"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// BudgetLimitListResponse represents the response for GET /budgets.
type BudgetLimitListResponse struct {
	BudgetLimits []BudgetLimitResponse `json:"budget_limits"`
}

// BudgetProgressResponse represents the spend of one budget limit for a month.
type BudgetProgressResponse struct {
	Category       string `json:"category"`
	Limit          string `json:"limit"`
	Spent          string `json:"spent"`
	PercentRaw     string `json:"percent_raw"`
	PercentDisplay string `json:"percent_display"`
	Status         string `json:"status"`
	Color          string `json:"color"`
}

// BudgetProgressListResponse represents the response for GET /budgets/progress.
type BudgetProgressListResponse struct {
	Month    string                   `json:"month"`
	Progress []BudgetProgressResponse `json:"progress"`
}

// ToBudgetLimitResponse converts a domain BudgetLimit entity to its DTO.
func ToBudgetLimitResponse(limit entity.BudgetLimit) BudgetLimitResponse {
	resp := BudgetLimitResponse{
		ID:           limit.ID.String(),
		Category:     limit.Category,
		MonthlyLimit: limit.MonthlyLimit.StringFixed(2),
	}
	if !limit.UpdatedAt.IsZero() {
		resp.UpdatedAt = limit.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToBudgetLimitListResponse converts a ListBudgetLimitsOutput to its DTO.
func ToBudgetLimitListResponse(output *budget.ListBudgetLimitsOutput) BudgetLimitListResponse {
	limits := make([]BudgetLimitResponse, len(output.BudgetLimits))
	for i, l := range output.BudgetLimits {
		limits[i] = ToBudgetLimitResponse(l)
	}
	return BudgetLimitListResponse{BudgetLimits: limits}
}

// ToBudgetProgressListResponse converts budget progress entries to DTOs.
func ToBudgetProgressListResponse(progress []entity.BudgetProgress) []BudgetProgressResponse {
	resp := make([]BudgetProgressResponse, len(progress))
	for i, p := range progress {
		resp[i] = BudgetProgressResponse{
			Category:       p.Category,
			Limit:          p.Limit.StringFixed(2),
			Spent:          p.Spent.StringFixed(2),
			PercentRaw:     p.PercentRaw.StringFixed(2),
			PercentDisplay: p.PercentDisplay.StringFixed(2),
			Status:         string(p.Status),
			Color:          p.Status.Color(),
		}
	}
	return resp
}

// ToBudgetProgressResponse converts a GetBudgetProgressOutput to its DTO.
func ToBudgetProgressResponse(output *budget.GetBudgetProgressOutput) BudgetProgressListResponse {
	return BudgetProgressListResponse{
		Month:    output.Month.String(),
		Progress: ToBudgetProgressListResponse(output.Progress),
	}
}
