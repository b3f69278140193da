// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/finance-tracker/ledger/internal/domain/entity"

// ReportRenderer renders a composed dashboard into a downloadable document.
type ReportRenderer interface {
	// RenderMonth returns the encoded report.
	RenderMonth(dashboard *entity.Dashboard) ([]byte, error)

	// ContentType returns the MIME type of the rendered document.
	ContentType() string
}
