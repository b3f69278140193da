// Package dashboard contains the snapshot loader and dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ExportDashboardOutput represents a rendered dashboard report.
type ExportDashboardOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportDashboardUseCase renders the month dashboard into a report file.
type ExportDashboardUseCase struct {
	dashboards *GetDashboardUseCase
	renderer   adapter.ReportRenderer
}

// NewExportDashboardUseCase creates a new ExportDashboardUseCase instance.
func NewExportDashboardUseCase(dashboards *GetDashboardUseCase, renderer adapter.ReportRenderer) *ExportDashboardUseCase {
	return &ExportDashboardUseCase{
		dashboards: dashboards,
		renderer:   renderer,
	}
}

// Execute renders every transaction of the view's month, not only one page.
func (uc *ExportDashboardUseCase) Execute(ctx context.Context, view entity.ViewConfig) (*ExportDashboardOutput, error) {
	view.Page = 1
	view.PageSize = maxExportRows

	out, err := uc.dashboards.Execute(ctx, GetDashboardInput{View: view})
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.RenderMonth(out.Dashboard)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &ExportDashboardOutput{
		FileName:    fmt.Sprintf("ledger-%s.xlsx", out.Dashboard.View.Month),
		ContentType: uc.renderer.ContentType(),
		Content:     content,
	}, nil
}

// maxExportRows bounds the transaction sheet of an export.
const maxExportRows = 100000
