// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is an immutable copy of the ledger collections fetched in one refresh.
type Snapshot struct {
	Version      uint64
	Transactions []Transaction
	BudgetLimits []BudgetLimit
	FetchedAt    time.Time
}

// MonthTotals represents income and expense sums for a month-scoped subset.
type MonthTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns income minus expense.
func (t MonthTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// CategoryTotal is one entry of a per-category aggregate.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TransactionPage is one page of a sorted transaction list.
type TransactionPage struct {
	Items      []Transaction `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalItems int           `json:"total_items"`
	TotalPages int           `json:"total_pages"`
}

// Dashboard is the complete derived view of a snapshot for one ViewConfig.
type Dashboard struct {
	SnapshotVersion    uint64           `json:"snapshot_version"`
	View               ViewConfig       `json:"view"`
	Totals             MonthTotals      `json:"totals"`
	RunningBalance     decimal.Decimal  `json:"running_balance"`
	ExpensesByCategory []CategoryTotal  `json:"expenses_by_category"`
	IncomeByCategory   []CategoryTotal  `json:"income_by_category"`
	Budgets            []BudgetProgress `json:"budgets"`
	Categories         []string         `json:"categories"`
	Transactions       TransactionPage  `json:"transactions"`
}
