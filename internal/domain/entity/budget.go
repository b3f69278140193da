// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetStatus classifies how much of a budget limit has been used.
type BudgetStatus string

const (
	BudgetStatusOK      BudgetStatus = "ok"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

// Color returns the progress bar color shown for the status.
func (s BudgetStatus) Color() string {
	switch s {
	case BudgetStatusOver:
		return "#ef4444"
	case BudgetStatusWarning:
		return "#f59e0b"
	default:
		return "#22c55e"
	}
}

// BudgetLimit represents a monthly spending ceiling for one category.
type BudgetLimit struct {
	ID           uuid.UUID       `json:"id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewBudgetLimit creates a new BudgetLimit entity.
func NewBudgetLimit(category string, monthlyLimit decimal.Decimal) *BudgetLimit {
	return &BudgetLimit{
		Category:     category,
		MonthlyLimit: monthlyLimit,
		UpdatedAt:    time.Now().UTC(),
	}
}

// BudgetProgress is the derived spend of one budget limit for a month.
type BudgetProgress struct {
	Category       string          `json:"category"`
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	PercentRaw     decimal.Decimal `json:"percent_raw"`
	PercentDisplay decimal.Decimal `json:"percent_display"` // PercentRaw clamped to [0, 100]
	Status         BudgetStatus    `json:"status"`
}
