package ledger

import (
	"dario.cat/mergo"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DefaultView is the view used for every field the caller leaves unset.
func DefaultView() entity.ViewConfig {
	return entity.ViewConfig{
		Month:    entity.AllTime,
		Category: entity.AllCategories,
		Order:    entity.SortOrderNewest,
		Page:     1,
		PageSize: entity.DefaultPageSize,
	}
}

// NormalizeView fills the zero-valued fields of view from DefaultView.
func NormalizeView(view entity.ViewConfig) entity.ViewConfig {
	if err := mergo.Merge(&view, DefaultView()); err != nil {
		return DefaultView()
	}
	return view
}

// Compose derives the complete dashboard of a snapshot for one view.
// Month totals, category breakdowns and budgets use the month subset; the
// running balance uses the full history; the list view additionally applies
// the category filter before sorting and paginating.
func Compose(snapshot entity.Snapshot, view entity.ViewConfig) entity.Dashboard {
	part := Partition(snapshot.Transactions, NormalizeView(view))

	expenses := AggregateByCategory(part.Transactions, entity.TransactionKindExpense)
	income := AggregateByCategory(part.Transactions, entity.TransactionKindIncome)

	listed := FilterCategory(part.Transactions, part.View.Category)

	return entity.Dashboard{
		SnapshotVersion:    snapshot.Version,
		View:               part.View,
		Totals:             MonthTotals(part.Transactions),
		RunningBalance:     RunningBalance(snapshot.Transactions, part.View.Month),
		ExpensesByCategory: SortedTotals(expenses),
		IncomeByCategory:   SortedTotals(income),
		Budgets:            BudgetProgress(snapshot.BudgetLimits, expenses),
		Categories:         part.Categories,
		Transactions:       View(listed, part.View.NewestFirst(), part.View.Page, part.View.PageSize),
	}
}
