package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func printDashboard(w io.Writer, d *entity.Dashboard) {
	fmt.Fprintf(w, "Month:           %s\n", d.View.Month)
	fmt.Fprintf(w, "Income:          %s\n", d.Totals.Income.StringFixed(2))
	fmt.Fprintf(w, "Expense:         %s\n", d.Totals.Expense.StringFixed(2))
	fmt.Fprintf(w, "Net:             %s\n", d.Totals.Net().StringFixed(2))
	fmt.Fprintf(w, "Running balance: %s\n", d.RunningBalance.StringFixed(2))

	printTotals(w, "Expenses by category", d.ExpensesByCategory)
	printTotals(w, "Income by category", d.IncomeByCategory)

	if len(d.Budgets) > 0 {
		fmt.Fprintln(w)
		printBudgets(w, d.View.Month, d.Budgets)
	}

	fmt.Fprintln(w)
	printPage(w, d.View, d.Transactions)
}

func printTotals(w io.Writer, title string, totals []entity.CategoryTotal) {
	if len(totals) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, t := range totals {
		fmt.Fprintf(tw, "  %s\t%s\t\n", t.Category, t.Total.StringFixed(2))
	}
	tw.Flush()
}

func printBudgets(w io.Writer, month entity.Month, progress []entity.BudgetProgress) {
	fmt.Fprintf(w, "Budgets %s\n", month)
	if len(progress) == 0 {
		fmt.Fprintln(w, "  no budget limits configured")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  CATEGORY\tSPENT\tLIMIT\tUSED\tSTATUS\t")
	for _, p := range progress {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s%%\t%s\t\n",
			p.Category,
			p.Spent.StringFixed(2),
			p.Limit.StringFixed(2),
			p.PercentRaw.StringFixed(1),
			strings.ToUpper(string(p.Status)),
		)
	}
	tw.Flush()
}

func printPage(w io.Writer, view entity.ViewConfig, page entity.TransactionPage) {
	fmt.Fprintf(w, "Transactions %s, category %s, %s first (page %d of %d, %d items)\n",
		view.Month, view.Category, view.Order, page.Page, page.TotalPages, page.TotalItems)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tx := range page.Items {
		amount := tx.Amount.StringFixed(2)
		if tx.Kind == entity.TransactionKindExpense {
			amount = "-" + amount
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t\n", tx.OccurredOn, tx.Description, tx.EffectiveCategory(), amount)
	}
	tw.Flush()
}
