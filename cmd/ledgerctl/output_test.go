package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestMonthFlag(t *testing.T) {
	fallback := entity.Month{Year: 2026, Month: 2}

	tests := []struct {
		raw     string
		want    entity.Month
		wantErr bool
	}{
		{raw: "", want: fallback},
		{raw: "all", want: entity.AllTime},
		{raw: "2025-11", want: entity.Month{Year: 2025, Month: 11}},
		{raw: "11/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := monthFlag(tt.raw, fallback)
			if (err != nil) != tt.wantErr {
				t.Fatalf("monthFlag(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("monthFlag(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPrintDashboard(t *testing.T) {
	d := &entity.Dashboard{
		View: entity.ViewConfig{Month: entity.Month{Year: 2026, Month: 2}, Category: entity.AllCategories, Order: entity.SortOrderNewest},
		Totals: entity.MonthTotals{
			Income:  decimal.NewFromInt(1000),
			Expense: decimal.RequireFromString("120.5"),
		},
		RunningBalance:     decimal.RequireFromString("879.5"),
		ExpensesByCategory: []entity.CategoryTotal{{Category: "Food", Total: decimal.RequireFromString("120.5")}},
		Budgets: []entity.BudgetProgress{{
			Category:   "Food",
			Limit:      decimal.NewFromInt(100),
			Spent:      decimal.RequireFromString("120.5"),
			PercentRaw: decimal.RequireFromString("120.5"),
			Status:     entity.BudgetStatusOver,
		}},
		Transactions: entity.TransactionPage{
			Items: []entity.Transaction{{
				Description: "Market",
				Amount:      decimal.RequireFromString("120.5"),
				Kind:        entity.TransactionKindExpense,
				OccurredOn:  "2026-02-03",
			}},
			Page:       1,
			TotalItems: 1,
			TotalPages: 1,
		},
	}

	var buf bytes.Buffer
	printDashboard(&buf, d)
	out := buf.String()

	for _, want := range []string{
		"Month:           2026-02",
		"Net:             879.50",
		"Expenses by category",
		"OVER",
		"120.5%",
		"-120.50",
		"Other",
		"page 1 of 1, 1 items",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Income by category") {
		t.Error("empty income breakdown was printed")
	}
}

func TestPrintBudgets_Empty(t *testing.T) {
	var buf bytes.Buffer
	printBudgets(&buf, entity.AllTime, nil)

	if !strings.Contains(buf.String(), "no budget limits configured") {
		t.Errorf("output = %q", buf.String())
	}
}
