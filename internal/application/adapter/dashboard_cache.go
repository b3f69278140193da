// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DashboardCache memoizes composed dashboards keyed by snapshot version and view.
type DashboardCache interface {
	// Get returns the cached dashboard and true on a hit.
	Get(ctx context.Context, version uint64, view entity.ViewConfig) (*entity.Dashboard, bool)

	// Set stores the dashboard composed for version and view. Failures are
	// not reported to the caller.
	Set(ctx context.Context, version uint64, view entity.ViewConfig, dashboard *entity.Dashboard)
}
