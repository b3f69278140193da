// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledgerchange"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpsertBudgetLimitInput represents the input for saving a budget limit.
type UpsertBudgetLimitInput struct {
	Category     string
	MonthlyLimit decimal.Decimal
}

// UpsertBudgetLimitOutput represents the output of saving a budget limit.
type UpsertBudgetLimitOutput struct {
	BudgetLimit *entity.BudgetLimit
}

// UpsertBudgetLimitUseCase creates or replaces the monthly limit of a category.
type UpsertBudgetLimitUseCase struct {
	repo    adapter.LedgerRepository
	changes ledgerchange.Announcer
}

// NewUpsertBudgetLimitUseCase creates a new UpsertBudgetLimitUseCase instance.
func NewUpsertBudgetLimitUseCase(repo adapter.LedgerRepository, changes ledgerchange.Announcer) *UpsertBudgetLimitUseCase {
	return &UpsertBudgetLimitUseCase{
		repo:    repo,
		changes: changes,
	}
}

// Execute validates and saves the limit.
func (uc *UpsertBudgetLimitUseCase) Execute(ctx context.Context, input UpsertBudgetLimitInput) (*UpsertBudgetLimitOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetCategory,
			"category is required",
			domainerror.ErrEmptyBudgetCategory,
		)
	}

	if !input.MonthlyLimit.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"monthly limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	saved, err := uc.repo.UpsertBudgetLimit(ctx, *entity.NewBudgetLimit(category, input.MonthlyLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to save budget limit: %w", err)
	}

	uc.changes.Announce(ctx, adapter.NewLedgerChangedEvent(adapter.LedgerChangeBudgetUpserted, saved.Category, 1))

	return &UpsertBudgetLimitOutput{BudgetLimit: saved}, nil
}
