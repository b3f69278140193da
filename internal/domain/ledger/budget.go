package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(75)
)

// ClassifyBudget maps a raw usage percentage to its status tier:
// below 75 is ok, from 75 up to 100 is a warning, 100 and above is over.
func ClassifyBudget(percentRaw decimal.Decimal) entity.BudgetStatus {
	switch {
	case percentRaw.GreaterThanOrEqual(hundred):
		return entity.BudgetStatusOver
	case percentRaw.GreaterThanOrEqual(warningThreshold):
		return entity.BudgetStatusWarning
	default:
		return entity.BudgetStatusOK
	}
}

// BudgetProgress computes the progress of every configured limit against the
// month's expense aggregate. Categories without spend count as zero. The
// result is sorted descending by raw percentage, keeping configuration order
// between ties.
func BudgetProgress(limits []entity.BudgetLimit, spent map[string]decimal.Decimal) []entity.BudgetProgress {
	out := make([]entity.BudgetProgress, 0, len(limits))

	for _, limit := range limits {
		amount, ok := spent[limit.Category]
		if !ok {
			amount = decimal.Zero
		}

		raw := percentOf(amount, limit.MonthlyLimit)
		display := raw
		if display.GreaterThan(hundred) {
			display = hundred
		}
		if display.IsNegative() {
			display = decimal.Zero
		}

		out = append(out, entity.BudgetProgress{
			Category:       limit.Category,
			Limit:          limit.MonthlyLimit,
			Spent:          amount,
			PercentRaw:     raw,
			PercentDisplay: display,
			Status:         ClassifyBudget(raw),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PercentRaw.GreaterThan(out[j].PercentRaw)
	})

	return out
}

// percentOf returns spent/limit*100. Creation rejects non-positive limits;
// a stored one still yields a value instead of a division panic: 0 when
// nothing was spent, 100 otherwise.
func percentOf(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		if spent.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return spent.Mul(hundred).Div(limit)
}
