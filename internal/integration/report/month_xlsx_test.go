package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func sampleDashboard() *entity.Dashboard {
	return &entity.Dashboard{
		View:           entity.ViewConfig{Month: entity.Month{Year: 2026, Month: 2}},
		Totals:         entity.MonthTotals{Income: decimal.NewFromInt(1500), Expense: decimal.RequireFromString("180.25")},
		RunningBalance: decimal.RequireFromString("2319.75"),
		ExpensesByCategory: []entity.CategoryTotal{
			{Category: "Food", Total: decimal.RequireFromString("120.25")},
			{Category: "Fun", Total: decimal.NewFromInt(60)},
		},
		IncomeByCategory: []entity.CategoryTotal{{Category: "Salary", Total: decimal.NewFromInt(1500)}},
		Budgets: []entity.BudgetProgress{
			{Category: "Fun", Limit: decimal.NewFromInt(50), Spent: decimal.NewFromInt(60), PercentRaw: decimal.NewFromInt(120), Status: entity.BudgetStatusOver},
			{Category: "Food", Limit: decimal.NewFromInt(500), Spent: decimal.RequireFromString("120.25"), PercentRaw: decimal.RequireFromString("24.05"), Status: entity.BudgetStatusOK},
		},
		Transactions: entity.TransactionPage{Items: []entity.Transaction{
			{Description: "Groceries", Amount: decimal.RequireFromString("120.25"), Kind: entity.TransactionKindExpense, Category: "Food", OccurredOn: "2026-02-03"},
			{Description: "Cinema", Amount: decimal.NewFromInt(60), Kind: entity.TransactionKindExpense, OccurredOn: "10/02/2026"},
		}},
	}
}

func TestMonthXLSX_RenderMonth(t *testing.T) {
	content, err := MonthXLSX{}.RenderMonth(sampleDashboard())
	if err != nil {
		t.Fatalf("RenderMonth() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SheetSummary, SheetBudgets, SheetTransactions}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d = %s, want %s", i, sheets[i], want[i])
		}
	}

	tests := []struct {
		sheet, cell, want string
	}{
		{SheetSummary, "B1", "2026-02"},
		{SheetSummary, "A6", "Running balance"},
		{SheetBudgets, "A2", "Fun"},
		{SheetBudgets, "E2", "over"},
		{SheetTransactions, "B2", "Groceries"},
		{SheetTransactions, "C3", entity.DefaultCategory},
		{SheetTransactions, "A3", "10/02/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.sheet+"!"+tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(tt.sheet, tt.cell)
			if err != nil {
				t.Fatalf("GetCellValue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
			}
		})
	}

	raw, err := f.GetCellValue(SheetSummary, "B6", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if raw != "2319.75" {
		t.Errorf("running balance cell = %q, want 2319.75", raw)
	}
}

func TestMonthXLSX_EmptyDashboard(t *testing.T) {
	content, err := MonthXLSX{}.RenderMonth(&entity.Dashboard{})
	if err != nil {
		t.Fatalf("RenderMonth() error = %v", err)
	}
	if len(content) == 0 {
		t.Error("RenderMonth() returned no content")
	}
	if (MonthXLSX{}).ContentType() != xlsxContentType {
		t.Errorf("ContentType() = %s", MonthXLSX{}.ContentType())
	}
}

func TestMergeStyles(t *testing.T) {
	s := mergeStyles(fontBold(), thinBorder("bottom"), fill("#ef4444"))
	if s.Font == nil || !s.Font.Bold || s.Font.Color != "#FFFFFF" {
		t.Errorf("Font = %+v, want bold white", s.Font)
	}
	if len(s.Border) != 1 || s.Fill.Color[0] != "#ef4444" {
		t.Errorf("merged style = %+v", s)
	}
}
