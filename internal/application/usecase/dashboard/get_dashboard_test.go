package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type memoryCache struct {
	entries map[string]*entity.Dashboard
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*entity.Dashboard)}
}

func cacheKey(version uint64, view entity.ViewConfig) string {
	return fmt.Sprintf("%d|%s|%s|%s|%d|%d", version, view.Month, view.Category, view.Order, view.Page, view.PageSize)
}

func (c *memoryCache) Get(ctx context.Context, version uint64, view entity.ViewConfig) (*entity.Dashboard, bool) {
	d, ok := c.entries[cacheKey(version, view)]
	return d, ok
}

func (c *memoryCache) Set(ctx context.Context, version uint64, view entity.ViewConfig, d *entity.Dashboard) {
	c.sets++
	c.entries[cacheKey(version, view)] = d
}

type failingSource struct{ err error }

func (s failingSource) Current(ctx context.Context) (*entity.Snapshot, error) {
	return nil, s.err
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	repo := &fakeLedger{
		transactions: []entity.Transaction{
			tx("groceries", 100, entity.TransactionKindExpense, "Food", "2026-02-05"),
			tx("salary", 500, entity.TransactionKindIncome, "Salary", "2026-01-10"),
			tx("dinner", 50, entity.TransactionKindExpense, "Food", "2026-01-20"),
		},
		limits: []entity.BudgetLimit{{Category: "Food", MonthlyLimit: decimal.NewFromInt(100)}},
	}
	cache := newMemoryCache()
	uc := NewGetDashboardUseCase(NewSnapshotLoader(repo), cache)

	input := GetDashboardInput{View: entity.ViewConfig{Month: entity.Month{Year: 2026, Month: 2}}}

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.CacheHit {
		t.Error("first Execute() reported a cache hit")
	}

	d := out.Dashboard
	if !d.RunningBalance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("RunningBalance = %s, want 350", d.RunningBalance)
	}
	if !d.Totals.Expense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expense total = %s, want 100", d.Totals.Expense)
	}
	if len(d.Budgets) != 1 || d.Budgets[0].Status != entity.BudgetStatusOver {
		t.Errorf("Budgets = %+v, want Food over", d.Budgets)
	}

	again, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !again.CacheHit || cache.sets != 1 {
		t.Errorf("second Execute() cache hit = %v with %d sets, want hit and 1 set", again.CacheHit, cache.sets)
	}
}

func TestGetDashboardUseCase_FetchErrorPropagates(t *testing.T) {
	cause := domainerror.NewFetchError("failed to list transactions", errors.New("boom"))
	uc := NewGetDashboardUseCase(failingSource{err: cause}, newMemoryCache())

	_, err := uc.Execute(context.Background(), GetDashboardInput{})
	if !errors.Is(err, cause) {
		t.Errorf("Execute() error = %v, want wrapped fetch error", err)
	}
}
