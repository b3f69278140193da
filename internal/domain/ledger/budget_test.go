package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func limit(category string, amount int64) entity.BudgetLimit {
	return entity.BudgetLimit{Category: category, MonthlyLimit: decimal.NewFromInt(amount)}
}

func TestClassifyBudget(t *testing.T) {
	tests := []struct {
		percent string
		want    entity.BudgetStatus
	}{
		{percent: "0", want: entity.BudgetStatusOK},
		{percent: "50", want: entity.BudgetStatusOK},
		{percent: "74.99", want: entity.BudgetStatusOK},
		{percent: "75", want: entity.BudgetStatusWarning},
		{percent: "80", want: entity.BudgetStatusWarning},
		{percent: "99.999", want: entity.BudgetStatusWarning},
		{percent: "100", want: entity.BudgetStatusOver},
		{percent: "120", want: entity.BudgetStatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			if got := ClassifyBudget(decimal.RequireFromString(tt.percent)); got != tt.want {
				t.Errorf("ClassifyBudget(%s) = %s, want %s", tt.percent, got, tt.want)
			}
		})
	}
}

func TestBudgetProgress_Tiers(t *testing.T) {
	tests := []struct {
		name        string
		spent       int64
		limit       int64
		wantStatus  entity.BudgetStatus
		wantDisplay int64
		wantRaw     int64
	}{
		{name: "warning", spent: 80, limit: 100, wantStatus: entity.BudgetStatusWarning, wantDisplay: 80, wantRaw: 80},
		{name: "ok", spent: 50, limit: 100, wantStatus: entity.BudgetStatusOK, wantDisplay: 50, wantRaw: 50},
		{name: "over clamps display", spent: 120, limit: 100, wantStatus: entity.BudgetStatusOver, wantDisplay: 100, wantRaw: 120},
		{name: "exactly at limit", spent: 200, limit: 200, wantStatus: entity.BudgetStatusOver, wantDisplay: 100, wantRaw: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spent := map[string]decimal.Decimal{"Food": decimal.NewFromInt(tt.spent)}
			got := BudgetProgress([]entity.BudgetLimit{limit("Food", tt.limit)}, spent)

			if len(got) != 1 {
				t.Fatalf("BudgetProgress() returned %d entries, want 1", len(got))
			}
			p := got[0]
			if p.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", p.Status, tt.wantStatus)
			}
			if !p.PercentRaw.Equal(decimal.NewFromInt(tt.wantRaw)) {
				t.Errorf("percent raw = %s, want %d", p.PercentRaw, tt.wantRaw)
			}
			if !p.PercentDisplay.Equal(decimal.NewFromInt(tt.wantDisplay)) {
				t.Errorf("percent display = %s, want %d", p.PercentDisplay, tt.wantDisplay)
			}
			if !p.Spent.Equal(decimal.NewFromInt(tt.spent)) {
				t.Errorf("spent = %s, want %d", p.Spent, tt.spent)
			}
		})
	}
}

func TestBudgetProgress_SortedByRawPercent(t *testing.T) {
	limits := []entity.BudgetLimit{
		limit("Food", 100),      // 50%
		limit("Rent", 1000),     // 100%
		limit("Fun", 50),        // 300%
		limit("Transport", 200), // 0%, no spend
		limit("Books", 40),      // 50%, ties with Food
		limit("Travel", 100),    // 150%
	}
	spent := map[string]decimal.Decimal{
		"Food":   decimal.NewFromInt(50),
		"Rent":   decimal.NewFromInt(1000),
		"Fun":    decimal.NewFromInt(150),
		"Books":  decimal.NewFromInt(20),
		"Travel": decimal.NewFromInt(150),
		"Other":  decimal.NewFromInt(999),
	}

	got := BudgetProgress(limits, spent)

	var order []string
	for _, p := range got {
		order = append(order, p.Category)
	}
	want := []string{"Fun", "Travel", "Rent", "Food", "Books", "Transport"}
	if !equalStrings(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].PercentRaw.LessThan(got[i].PercentRaw) {
			t.Errorf("entry %d (%s) is above entry %d (%s)", i, got[i].PercentRaw, i-1, got[i-1].PercentRaw)
		}
	}

	// Both over budget; the clamp must not tie them.
	if !got[0].PercentDisplay.Equal(got[1].PercentDisplay) || got[0].PercentRaw.Equal(got[1].PercentRaw) {
		t.Errorf("expected equal display and different raw percentages, got %+v and %+v", got[0], got[1])
	}

	if !got[5].Spent.IsZero() || got[5].Status != entity.BudgetStatusOK {
		t.Errorf("category without spend = %+v, want zero spend and ok status", got[5])
	}
}

func TestBudgetProgress_NonPositiveLimit(t *testing.T) {
	limits := []entity.BudgetLimit{limit("Idle", 0), limit("Busy", 0)}
	spent := map[string]decimal.Decimal{"Busy": decimal.NewFromInt(10)}

	got := BudgetProgress(limits, spent)

	if got[0].Category != "Busy" || got[0].Status != entity.BudgetStatusOver {
		t.Errorf("first entry = %+v, want Busy over", got[0])
	}
	if got[1].Category != "Idle" || got[1].Status != entity.BudgetStatusOK {
		t.Errorf("second entry = %+v, want Idle ok", got[1])
	}
}

func TestBudgetProgress_Empty(t *testing.T) {
	got := BudgetProgress(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("BudgetProgress(nil, nil) = %#v, want empty slice", got)
	}
}
