package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// MonthTotals sums income and expense amounts over an already month-scoped subset.
func MonthTotals(subset []entity.Transaction) entity.MonthTotals {
	totals := entity.MonthTotals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, tx := range subset {
		switch tx.Kind {
		case entity.TransactionKindIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case entity.TransactionKindExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}

	return totals
}

// RunningBalance returns the cumulative balance of the full history up to and
// including the last day of month: every income adds its amount and every
// expense subtracts it.
//
// With a month selected, transactions with unparseable dates are left out
// since they cannot be placed before or after the month. For AllTime every
// transaction counts, dated or not.
func RunningBalance(all []entity.Transaction, month entity.Month) decimal.Decimal {
	balance := decimal.Zero

	for _, tx := range all {
		if !month.IsAllTime() {
			d, ok := ParseDate(tx.OccurredOn)
			if !ok || !month.IncludesUpTo(d) {
				continue
			}
		}
		balance = balance.Add(signed(tx))
	}

	return balance
}

func signed(tx entity.Transaction) decimal.Decimal {
	switch tx.Kind {
	case entity.TransactionKindIncome:
		return tx.Amount
	case entity.TransactionKindExpense:
		return tx.Amount.Neg()
	default:
		return decimal.Zero
	}
}
