package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func expense(amount int64, category, date string) entity.Transaction {
	return entity.Transaction{
		Description: "expense " + category,
		Amount:      decimal.NewFromInt(amount),
		Kind:        entity.TransactionKindExpense,
		Category:    category,
		OccurredOn:  date,
	}
}

func income(amount int64, category, date string) entity.Transaction {
	return entity.Transaction{
		Description: "income " + category,
		Amount:      decimal.NewFromInt(amount),
		Kind:        entity.TransactionKindIncome,
		Category:    category,
		OccurredOn:  date,
	}
}

func described(tx entity.Transaction, description string) entity.Transaction {
	tx.Description = description
	return tx
}

func descriptions(txs []entity.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Description
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scenarioTransactions is the three-record history used across balance tests.
func scenarioTransactions() []entity.Transaction {
	return []entity.Transaction{
		expense(100, "Food", "2026-02-05"),
		income(500, "Salary", "2026-01-10"),
		expense(50, "Food", "2026-01-20"),
	}
}

var february2026 = entity.Month{Year: 2026, Month: 2}
