// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"sort"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListBudgetLimitsOutput represents the configured limits sorted by category.
type ListBudgetLimitsOutput struct {
	BudgetLimits []entity.BudgetLimit
}

// ListBudgetLimitsUseCase reads the configured limits straight from the ledger store.
type ListBudgetLimitsUseCase struct {
	repo adapter.LedgerRepository
}

// NewListBudgetLimitsUseCase creates a new ListBudgetLimitsUseCase instance.
func NewListBudgetLimitsUseCase(repo adapter.LedgerRepository) *ListBudgetLimitsUseCase {
	return &ListBudgetLimitsUseCase{repo: repo}
}

// Execute lists the limits.
func (uc *ListBudgetLimitsUseCase) Execute(ctx context.Context) (*ListBudgetLimitsOutput, error) {
	limits, err := uc.repo.ListBudgetLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget limits: %w", err)
	}

	sort.SliceStable(limits, func(i, j int) bool {
		return limits[i].Category < limits[j].Category
	})

	return &ListBudgetLimitsOutput{BudgetLimits: limits}, nil
}
