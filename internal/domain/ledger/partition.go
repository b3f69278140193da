package ledger

import (
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Partitioned is the month-scoped subset of a transaction history together
// with the view configuration adjusted to it.
type Partitioned struct {
	Transactions []entity.Transaction
	Categories   []string
	View         entity.ViewConfig
}

// FilterMonth returns the transactions whose date falls in month. Transactions
// with unparseable dates are excluded. AllTime returns a copy of the input.
func FilterMonth(txs []entity.Transaction, month entity.Month) []entity.Transaction {
	if month.IsAllTime() {
		out := make([]entity.Transaction, len(txs))
		copy(out, txs)
		return out
	}

	out := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		d, ok := ParseDate(tx.OccurredOn)
		if !ok || !month.Contains(d) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Partition filters txs to view.Month and collects the categories present in
// the subset. When the view's category filter names a category absent from
// the subset, the returned view resets it to entity.AllCategories and goes
// back to the first page.
func Partition(txs []entity.Transaction, view entity.ViewConfig) Partitioned {
	subset := FilterMonth(txs, view.Month)
	categories := Categories(subset)

	if view.Category == "" {
		view = view.WithCategory(entity.AllCategories)
	}
	if view.Category != entity.AllCategories && !containsString(categories, view.Category) {
		view = view.WithCategory(entity.AllCategories).WithPage(1)
	}

	return Partitioned{
		Transactions: subset,
		Categories:   categories,
		View:         view,
	}
}

// FilterCategory keeps the transactions whose effective category equals
// category. entity.AllCategories and the empty string keep everything.
func FilterCategory(txs []entity.Transaction, category string) []entity.Transaction {
	if category == "" || category == entity.AllCategories {
		out := make([]entity.Transaction, len(txs))
		copy(out, txs)
		return out
	}

	out := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.EffectiveCategory() == category {
			out = append(out, tx)
		}
	}
	return out
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
