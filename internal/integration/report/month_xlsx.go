// Package report renders dashboards as spreadsheets.
package report

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of the month report.
const (
	SheetSummary      = "Summary"
	SheetBudgets      = "Budgets"
	SheetTransactions = "Transactions"
)

// MonthXLSX renders a dashboard into a three-sheet workbook.
type MonthXLSX struct{}

var _ adapter.ReportRenderer = MonthXLSX{}

// ContentType returns the XLSX MIME type.
func (MonthXLSX) ContentType() string {
	return xlsxContentType
}

// RenderMonth writes the summary, budget progress and transaction list.
func (MonthXLSX) RenderMonth(d *entity.Dashboard) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{Application: "ledger"})

	first := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(first, SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetBudgets, SheetTransactions} {
		if _, err := xlsx.NewSheet(name); err != nil {
			return nil, err
		}
	}

	w := &writer{xlsx: xlsx, styles: make(map[string]int)}
	w.summary(d)
	w.budgets(d.Budgets)
	w.transactions(d.Transactions.Items)
	if w.err != nil {
		return nil, w.err
	}

	xlsx.SetActiveSheet(0)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writer keeps the first error so the sheet code reads top to bottom.
type writer struct {
	xlsx   *excelize.File
	styles map[string]int
	err    error
}

func (w *writer) set(sheet, cell string, value any) {
	if w.err != nil {
		return
	}
	w.err = w.xlsx.SetCellValue(sheet, cell, value)
}

func (w *writer) style(sheet, from, to, key string, parts ...*excelize.Style) {
	if w.err != nil {
		return
	}
	id, ok := w.styles[key]
	if !ok {
		id, w.err = w.xlsx.NewStyle(mergeStyles(parts...))
		if w.err != nil {
			return
		}
		w.styles[key] = id
	}
	w.err = w.xlsx.SetCellStyle(sheet, from, to, id)
}

func (w *writer) header(sheet string, row int, labels ...string) {
	for i, label := range labels {
		w.set(sheet, cell(i, row), label)
	}
	w.style(sheet, cell(0, row), cell(len(labels)-1, row), "header", fontBold(), thinBorder("bottom"))
}

func (w *writer) summary(d *entity.Dashboard) {
	s := SheetSummary
	_ = w.xlsx.SetColWidth(s, "A", "A", 28)
	_ = w.xlsx.SetColWidth(s, "B", "B", 16)

	w.set(s, "A1", "Month")
	w.set(s, "B1", d.View.Month.String())
	w.style(s, "A1", "B1", "title", fontBold())

	lines := []struct {
		label string
		value any
	}{
		{"Income", d.Totals.Income.InexactFloat64()},
		{"Expenses", d.Totals.Expense.InexactFloat64()},
		{"Net", d.Totals.Net().InexactFloat64()},
		{"Running balance", d.RunningBalance.InexactFloat64()},
	}
	for i, l := range lines {
		w.set(s, cell(0, i+3), l.label)
		w.set(s, cell(1, i+3), l.value)
	}
	w.style(s, "B3", cell(1, len(lines)+2), "money", moneyFormat())

	row := len(lines) + 4
	w.header(s, row, "Expenses by category", "Total")
	for _, ct := range d.ExpensesByCategory {
		row++
		w.set(s, cell(0, row), ct.Category)
		w.set(s, cell(1, row), ct.Total.InexactFloat64())
		w.style(s, cell(1, row), cell(1, row), "money", moneyFormat())
	}

	row += 2
	w.header(s, row, "Income by category", "Total")
	for _, ct := range d.IncomeByCategory {
		row++
		w.set(s, cell(0, row), ct.Category)
		w.set(s, cell(1, row), ct.Total.InexactFloat64())
		w.style(s, cell(1, row), cell(1, row), "money", moneyFormat())
	}
}

func (w *writer) budgets(progress []entity.BudgetProgress) {
	s := SheetBudgets
	_ = w.xlsx.SetColWidth(s, "A", "A", 24)
	_ = w.xlsx.SetColWidth(s, "B", "E", 14)

	w.header(s, 1, "Category", "Limit", "Spent", "Used %", "Status")
	for i, p := range progress {
		row := i + 2
		w.set(s, cell(0, row), p.Category)
		w.set(s, cell(1, row), p.Limit.InexactFloat64())
		w.set(s, cell(2, row), p.Spent.InexactFloat64())
		w.set(s, cell(3, row), p.PercentRaw.Round(1).InexactFloat64())
		w.set(s, cell(4, row), string(p.Status))
		w.style(s, cell(1, row), cell(2, row), "money", moneyFormat())
		w.style(s, cell(4, row), cell(4, row), "status-"+string(p.Status), fontBold(), fill(p.Status.Color()))
	}
}

func (w *writer) transactions(items []entity.Transaction) {
	s := SheetTransactions
	_ = w.xlsx.SetColWidth(s, "A", "A", 14)
	_ = w.xlsx.SetColWidth(s, "B", "B", 40)
	_ = w.xlsx.SetColWidth(s, "C", "E", 14)

	w.header(s, 1, "Date", "Description", "Category", "Kind", "Amount")
	for i, tx := range items {
		row := i + 2
		w.set(s, cell(0, row), tx.OccurredOn)
		w.set(s, cell(1, row), tx.Description)
		w.set(s, cell(2, row), tx.EffectiveCategory())
		w.set(s, cell(3, row), string(tx.Kind))
		w.set(s, cell(4, row), tx.Amount.InexactFloat64())
	}
	if len(items) > 0 {
		w.style(s, "E2", cell(4, len(items)+1), "money", moneyFormat())
	}

	_ = w.xlsx.SetPanes(s, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func moneyFormat() *excelize.Style {
	format := "#,##0.00"
	return &excelize.Style{CustomNumFmt: &format}
}

func fontBold() *excelize.Style {
	return &excelize.Style{Font: &excelize.Font{Bold: true}}
}

func fill(color string) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, side := range where {
		s.Border = append(s.Border, excelize.Border{Type: side, Color: "#000000", Style: 1})
	}
	return s
}

// mergeStyles folds parts left to right; later parts override earlier ones.
func mergeStyles(parts ...*excelize.Style) *excelize.Style {
	merged := &excelize.Style{}
	for _, p := range parts {
		if err := mergo.Merge(merged, p, mergo.WithOverride); err != nil {
			panic(fmt.Sprintf("merge cell styles: %v", err))
		}
	}
	return merged
}
