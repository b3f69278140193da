// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// SnapshotSource provides the snapshot that lists are computed from.
type SnapshotSource interface {
	Current(ctx context.Context) (*entity.Snapshot, error)
}

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	View entity.ViewConfig
}

// ListTransactionsOutput represents one page of the filtered, sorted list.
type ListTransactionsOutput struct {
	Page       entity.TransactionPage
	Categories []string
	View       entity.ViewConfig
}

// ListTransactionsUseCase lists snapshot transactions for a view.
type ListTransactionsUseCase struct {
	snapshots SnapshotSource
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(snapshots SnapshotSource) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{snapshots: snapshots}
}

// Execute partitions by month, filters by category, sorts by date and paginates.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	snapshot, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	part := ledger.Partition(snapshot.Transactions, ledger.NormalizeView(input.View))
	listed := ledger.FilterCategory(part.Transactions, part.View.Category)

	return &ListTransactionsOutput{
		Page:       ledger.View(listed, part.View.NewestFirst(), part.View.Page, part.View.PageSize),
		Categories: part.Categories,
		View:       part.View,
	}, nil
}
