// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// SnapshotSource provides the snapshot that progress is computed from.
type SnapshotSource interface {
	Current(ctx context.Context) (*entity.Snapshot, error)
}

// GetBudgetProgressInput represents the input for budget progress.
type GetBudgetProgressInput struct {
	Month entity.Month
}

// GetBudgetProgressOutput represents budget progress for one month.
type GetBudgetProgressOutput struct {
	Month    entity.Month
	Progress []entity.BudgetProgress
}

// GetBudgetProgressUseCase computes per-category spend against the configured limits.
type GetBudgetProgressUseCase struct {
	snapshots SnapshotSource
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(snapshots SnapshotSource) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{snapshots: snapshots}
}

// Execute computes the progress, worst category first.
func (uc *GetBudgetProgressUseCase) Execute(ctx context.Context, input GetBudgetProgressInput) (*GetBudgetProgressOutput, error) {
	snapshot, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	subset := ledger.FilterMonth(snapshot.Transactions, input.Month)
	spent := ledger.AggregateByCategory(subset, entity.TransactionKindExpense)

	return &GetBudgetProgressOutput{
		Month:    input.Month,
		Progress: ledger.BudgetProgress(snapshot.BudgetLimits, spent),
	}, nil
}
