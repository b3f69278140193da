package ledger

import (
	"testing"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestFilterMonth(t *testing.T) {
	txs := []entity.Transaction{
		described(expense(10, "Food", "2026-02-01T00:00:00.000-03:00"), "first of feb"),
		described(expense(10, "Food", "2026-01-31 23:59:59"), "last of jan"),
		described(expense(10, "Food", "28/02/2026"), "slash feb"),
		described(expense(10, "Food", "2025-02-10"), "feb last year"),
		described(expense(10, "Food", ""), "no date"),
		described(expense(10, "Food", "garbage"), "bad date"),
	}

	tests := []struct {
		name  string
		month entity.Month
		want  []string
	}{
		{
			name:  "selected month",
			month: february2026,
			want:  []string{"first of feb", "slash feb"},
		},
		{
			name:  "previous month",
			month: entity.Month{Year: 2026, Month: 1},
			want:  []string{"last of jan"},
		},
		{
			name:  "all time keeps every record",
			month: entity.AllTime,
			want:  []string{"first of feb", "last of jan", "slash feb", "feb last year", "no date", "bad date"},
		},
		{
			name:  "empty month",
			month: entity.Month{Year: 2030, Month: 6},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := descriptions(FilterMonth(txs, tt.month))
			if !equalStrings(got, tt.want) {
				t.Errorf("FilterMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterMonth_Idempotent(t *testing.T) {
	txs := append(scenarioTransactions(), expense(5, "", "15/02/2026"), expense(7, "Fun", ""))

	for _, month := range []entity.Month{february2026, {Year: 2026, Month: 1}, entity.AllTime} {
		once := FilterMonth(txs, month)
		twice := FilterMonth(once, month)
		if !equalStrings(descriptions(once), descriptions(twice)) {
			t.Errorf("month %s: second partition = %v, want %v", month, descriptions(twice), descriptions(once))
		}
	}
}

func TestFilterMonth_DoesNotAliasInput(t *testing.T) {
	txs := scenarioTransactions()
	out := FilterMonth(txs, entity.AllTime)
	out[0].Description = "changed"

	if txs[0].Description == "changed" {
		t.Error("FilterMonth() returned a slice sharing the input backing array")
	}
}

func TestPartition_CategoryFilter(t *testing.T) {
	txs := []entity.Transaction{
		expense(10, "Food", "2026-02-03"),
		expense(10, "", "2026-02-04"),
		expense(10, "Travel", "2026-01-04"),
	}

	tests := []struct {
		name           string
		view           entity.ViewConfig
		wantCategory   string
		wantPage       int
		wantCategories []string
	}{
		{
			name:           "category present in month is kept",
			view:           entity.ViewConfig{Month: february2026, Category: "Food", Page: 2},
			wantCategory:   "Food",
			wantPage:       2,
			wantCategories: []string{"Food", "Other"},
		},
		{
			name:           "category absent from month resets to all",
			view:           entity.ViewConfig{Month: february2026, Category: "Travel", Page: 3},
			wantCategory:   entity.AllCategories,
			wantPage:       1,
			wantCategories: []string{"Food", "Other"},
		},
		{
			name:           "empty category means all",
			view:           entity.ViewConfig{Month: february2026, Page: 1},
			wantCategory:   entity.AllCategories,
			wantPage:       1,
			wantCategories: []string{"Food", "Other"},
		},
		{
			name:           "all time sees every category",
			view:           entity.ViewConfig{Category: "Travel", Page: 1},
			wantCategory:   "Travel",
			wantPage:       1,
			wantCategories: []string{"Food", "Other", "Travel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(txs, tt.view)
			if got.View.Category != tt.wantCategory {
				t.Errorf("Partition() category = %q, want %q", got.View.Category, tt.wantCategory)
			}
			if got.View.Page != tt.wantPage {
				t.Errorf("Partition() page = %d, want %d", got.View.Page, tt.wantPage)
			}
			if !equalStrings(got.Categories, tt.wantCategories) {
				t.Errorf("Partition() categories = %v, want %v", got.Categories, tt.wantCategories)
			}
		})
	}
}

func TestPartition_LeavesCallerViewUntouched(t *testing.T) {
	view := entity.ViewConfig{Month: february2026, Category: "Missing", Page: 4}
	_ = Partition(scenarioTransactions(), view)

	if view.Category != "Missing" || view.Page != 4 {
		t.Errorf("caller view changed to %+v", view)
	}
}

func TestFilterCategory(t *testing.T) {
	txs := []entity.Transaction{
		described(expense(1, "Food", "2026-02-01"), "food"),
		described(expense(1, "", "2026-02-01"), "uncategorized"),
		described(expense(1, "Rent", "2026-02-01"), "rent"),
	}

	tests := []struct {
		category string
		want     []string
	}{
		{category: entity.AllCategories, want: []string{"food", "uncategorized", "rent"}},
		{category: "", want: []string{"food", "uncategorized", "rent"}},
		{category: "Other", want: []string{"uncategorized"}},
		{category: "Food", want: []string{"food"}},
		{category: "Fun", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := descriptions(FilterCategory(txs, tt.category))
			if !equalStrings(got, tt.want) {
				t.Errorf("FilterCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}
