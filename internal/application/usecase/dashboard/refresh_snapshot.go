// Package dashboard contains the snapshot loader and dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SnapshotRefresher forces a new snapshot fetch.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) (*entity.Snapshot, error)
}

// RefreshSnapshotOutput represents the output of a snapshot refresh.
type RefreshSnapshotOutput struct {
	Version          uint64
	TransactionCount int
	BudgetLimitCount int
	FetchedAt        time.Time
}

// RefreshSnapshotUseCase reloads the ledger snapshot on demand.
type RefreshSnapshotUseCase struct {
	refresher SnapshotRefresher
}

// NewRefreshSnapshotUseCase creates a new RefreshSnapshotUseCase instance.
func NewRefreshSnapshotUseCase(refresher SnapshotRefresher) *RefreshSnapshotUseCase {
	return &RefreshSnapshotUseCase{refresher: refresher}
}

// Execute performs the refresh.
func (uc *RefreshSnapshotUseCase) Execute(ctx context.Context) (*RefreshSnapshotOutput, error) {
	snapshot, err := uc.refresher.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	return &RefreshSnapshotOutput{
		Version:          snapshot.Version,
		TransactionCount: len(snapshot.Transactions),
		BudgetLimitCount: len(snapshot.BudgetLimits),
		FetchedAt:        snapshot.FetchedAt,
	}, nil
}
