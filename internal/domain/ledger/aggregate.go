package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AggregateByCategory sums the amounts of the transactions of the given kind,
// grouped by effective category.
func AggregateByCategory(txs []entity.Transaction, kind entity.TransactionKind) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}
		category := tx.EffectiveCategory()
		totals[category] = totals[category].Add(tx.Amount)
	}
	return totals
}

// SortedTotals enumerates an aggregate ordered by category name.
func SortedTotals(totals map[string]decimal.Decimal) []entity.CategoryTotal {
	out := make([]entity.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, entity.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

// Categories returns the distinct effective categories of txs, sorted by name.
func Categories(txs []entity.Transaction) []string {
	seen := make(map[string]struct{}, len(txs))
	out := make([]string, 0)
	for _, tx := range txs {
		category := tx.EffectiveCategory()
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
