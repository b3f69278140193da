package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestMonthTotals_Scenario(t *testing.T) {
	subset := FilterMonth(scenarioTransactions(), february2026)
	totals := MonthTotals(subset)

	if !totals.Expense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expense total = %s, want 100", totals.Expense)
	}
	if !totals.Income.IsZero() {
		t.Errorf("income total = %s, want 0", totals.Income)
	}
	if !totals.Net().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("net = %s, want -100", totals.Net())
	}
}

func TestMonthTotals_Empty(t *testing.T) {
	totals := MonthTotals(nil)
	if !totals.Income.IsZero() || !totals.Expense.IsZero() {
		t.Errorf("MonthTotals(nil) = %+v, want zero totals", totals)
	}
}

func TestRunningBalance(t *testing.T) {
	history := append(scenarioTransactions(),
		income(1000, "Salary", "2026-03-05"),
		expense(30, "Fun", "not a date"),
		expense(20, "Fun", ""),
		income(5, "Gift", "31/12/2025 10:00"),
	)

	tests := []struct {
		name  string
		txs   []entity.Transaction
		month entity.Month
		want  int64
	}{
		{name: "scenario cumulative to february", txs: scenarioTransactions(), month: february2026, want: 350},
		{name: "january only sees earlier records", txs: scenarioTransactions(), month: entity.Month{Year: 2026, Month: 1}, want: 450},
		{name: "before any record", txs: scenarioTransactions(), month: entity.Month{Year: 2025, Month: 12}, want: 0},
		{name: "later months exclude future records", txs: history, month: february2026, want: 355},
		{name: "month selected skips undated records", txs: history, month: entity.Month{Year: 2026, Month: 3}, want: 1355},
		{name: "all time counts undated records", txs: history, month: entity.AllTime, want: 1305},
		{name: "empty history", txs: nil, month: february2026, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunningBalance(tt.txs, tt.month)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("RunningBalance() = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestAggregateMatchesExpenseTotal(t *testing.T) {
	history := append(scenarioTransactions(),
		expense(12, "", "2026-02-14"),
		expense(8, "Transport", "14/02/2026"),
		income(40, "Refund", "2026-02-20"),
		expense(99, "Food", "2026-03-01"),
		expense(3, "Food", ""),
	)

	months := []entity.Month{february2026, {Year: 2026, Month: 1}, {Year: 2026, Month: 3}, entity.AllTime}
	for _, month := range months {
		t.Run(month.String(), func(t *testing.T) {
			subset := FilterMonth(history, month)

			sum := decimal.Zero
			for _, v := range AggregateByCategory(subset, entity.TransactionKindExpense) {
				sum = sum.Add(v)
			}

			want := MonthTotals(subset).Expense
			if !sum.Equal(want) {
				t.Errorf("sum of category totals = %s, want expense total %s", sum, want)
			}
		})
	}
}
