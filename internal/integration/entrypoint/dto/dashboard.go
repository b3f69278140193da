// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ViewResponse echoes the normalized view the response was computed for.
type ViewResponse struct {
	Month    string `json:"month"`
	Category string `json:"category"`
	Order    string `json:"order"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// TotalsResponse represents month-scoped income and expense sums.
type TotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// CategoryTotalResponse represents one entry of a category breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// DashboardResponse represents the response for GET /dashboard.
type DashboardResponse struct {
	SnapshotVersion    uint64                   `json:"snapshot_version"`
	CacheHit           bool                     `json:"cache_hit"`
	View               ViewResponse             `json:"view"`
	Totals             TotalsResponse           `json:"totals"`
	RunningBalance     string                   `json:"running_balance"`
	ExpensesByCategory []CategoryTotalResponse  `json:"expenses_by_category"`
	IncomeByCategory   []CategoryTotalResponse  `json:"income_by_category"`
	Budgets            []BudgetProgressResponse `json:"budgets"`
	Categories         []string                 `json:"categories"`
	Transactions       TransactionPageResponse  `json:"transactions"`
}

// RefreshSnapshotResponse represents the response for POST /snapshot/refresh.
type RefreshSnapshotResponse struct {
	Version          uint64 `json:"version"`
	TransactionCount int    `json:"transaction_count"`
	BudgetLimitCount int    `json:"budget_limit_count"`
	FetchedAt        string `json:"fetched_at"`
}

// ToViewResponse converts a ViewConfig to its DTO.
func ToViewResponse(view entity.ViewConfig) ViewResponse {
	return ViewResponse{
		Month:    view.Month.String(),
		Category: view.Category,
		Order:    string(view.Order),
		Page:     view.Page,
		PageSize: view.PageSize,
	}
}

// ToCategoryTotalsResponse converts a category breakdown to its DTO.
func ToCategoryTotalsResponse(totals []entity.CategoryTotal) []CategoryTotalResponse {
	resp := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = CategoryTotalResponse{Category: t.Category, Total: t.Total.StringFixed(2)}
	}
	return resp
}

// ToDashboardResponse converts a GetDashboardOutput to its DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	d := output.Dashboard
	return DashboardResponse{
		SnapshotVersion: d.SnapshotVersion,
		CacheHit:        output.CacheHit,
		View:            ToViewResponse(d.View),
		Totals: TotalsResponse{
			Income:  d.Totals.Income.StringFixed(2),
			Expense: d.Totals.Expense.StringFixed(2),
			Net:     d.Totals.Net().StringFixed(2),
		},
		RunningBalance:     d.RunningBalance.StringFixed(2),
		ExpensesByCategory: ToCategoryTotalsResponse(d.ExpensesByCategory),
		IncomeByCategory:   ToCategoryTotalsResponse(d.IncomeByCategory),
		Budgets:            ToBudgetProgressListResponse(d.Budgets),
		Categories:         nonNilStrings(d.Categories),
		Transactions:       ToTransactionPageResponse(d.Transactions),
	}
}

// ToRefreshSnapshotResponse converts a RefreshSnapshotOutput to its DTO.
func ToRefreshSnapshotResponse(output *dashboard.RefreshSnapshotOutput) RefreshSnapshotResponse {
	return RefreshSnapshotResponse{
		Version:          output.Version,
		TransactionCount: output.TransactionCount,
		BudgetLimitCount: output.BudgetLimitCount,
		FetchedAt:        output.FetchedAt.UTC().Format(time.RFC3339),
	}
}
