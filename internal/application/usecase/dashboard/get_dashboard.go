// Package dashboard contains the snapshot loader and dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// SnapshotSource provides the snapshot that views are computed from.
type SnapshotSource interface {
	Current(ctx context.Context) (*entity.Snapshot, error)
}

// GetDashboardInput represents the input for the dashboard.
type GetDashboardInput struct {
	View entity.ViewConfig
}

// GetDashboardOutput represents the output of the dashboard.
type GetDashboardOutput struct {
	Dashboard *entity.Dashboard
	CacheHit  bool
}

// GetDashboardUseCase composes the dashboard of the current snapshot.
type GetDashboardUseCase struct {
	snapshots SnapshotSource
	cache     adapter.DashboardCache
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(snapshots SnapshotSource, cache adapter.DashboardCache) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		snapshots: snapshots,
		cache:     cache,
	}
}

// Execute loads the current snapshot and derives the dashboard for the view.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	snapshot, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	view := ledger.NormalizeView(input.View)

	if cached, ok := uc.cache.Get(ctx, snapshot.Version, view); ok {
		return &GetDashboardOutput{Dashboard: cached, CacheHit: true}, nil
	}

	dashboard := ledger.Compose(*snapshot, view)
	uc.cache.Set(ctx, snapshot.Version, view, &dashboard)

	return &GetDashboardOutput{Dashboard: &dashboard}, nil
}
