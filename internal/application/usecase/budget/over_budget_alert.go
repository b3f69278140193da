// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// OverBudgetAlerter emails the configured recipient when a new expense moves
// its category's month into the over-budget tier.
type OverBudgetAlerter struct {
	notifier       adapter.BudgetAlertNotifier
	recipientEmail string
	recipientName  string
}

// NewOverBudgetAlerter creates a new OverBudgetAlerter instance. A nil
// notifier or empty recipient disables alerts.
func NewOverBudgetAlerter(notifier adapter.BudgetAlertNotifier, recipientEmail, recipientName string) *OverBudgetAlerter {
	return &OverBudgetAlerter{
		notifier:       notifier,
		recipientEmail: recipientEmail,
		recipientName:  recipientName,
	}
}

// Enabled reports whether alerts are sent at all.
func (a *OverBudgetAlerter) Enabled() bool {
	return a != nil && a.notifier != nil && a.recipientEmail != ""
}

// CheckExpense compares the category's month progress in before (a snapshot
// taken before created was written) with the progress including created, and
// sends an alert on the transition into over. Returns whether an alert was sent.
func (a *OverBudgetAlerter) CheckExpense(ctx context.Context, before *entity.Snapshot, created entity.Transaction) bool {
	if !a.Enabled() || before == nil || created.Kind != entity.TransactionKindExpense {
		return false
	}

	date, ok := ledger.ParseDate(created.OccurredOn)
	if !ok {
		return false
	}
	month := entity.Month{Year: date.Year, Month: date.Month}
	category := created.EffectiveCategory()

	var limits []entity.BudgetLimit
	for _, l := range before.BudgetLimits {
		if l.Category == category {
			limits = append(limits, l)
		}
	}
	if len(limits) == 0 {
		return false
	}

	spentBefore := ledger.AggregateByCategory(ledger.FilterMonth(before.Transactions, month), entity.TransactionKindExpense)[category]
	spentAfter := spentBefore.Add(created.Amount)

	was := ledger.BudgetProgress(limits, map[string]decimal.Decimal{category: spentBefore})[0]
	now := ledger.BudgetProgress(limits, map[string]decimal.Decimal{category: spentAfter})[0]

	if was.Status == entity.BudgetStatusOver || now.Status != entity.BudgetStatusOver {
		return false
	}

	err := a.notifier.NotifyBudgetOver(ctx, adapter.BudgetAlertInput{
		Category:       category,
		Month:          month.String(),
		Limit:          now.Limit.StringFixed(2),
		Spent:          now.Spent.StringFixed(2),
		PercentRaw:     now.PercentRaw.StringFixed(1),
		RecipientEmail: a.recipientEmail,
		RecipientName:  a.recipientName,
	})
	if err != nil {
		slog.Warn("Failed to send budget alert",
			"category", category,
			"month", month.String(),
			"error", err,
		)
		return false
	}

	slog.Info("Budget alert sent", "category", category, "month", month.String())
	return true
}
