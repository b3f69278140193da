// Package dashboard contains the snapshot loader and dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SnapshotLoader fetches immutable ledger snapshots from the ledger store.
// Each refresh gets the next version number. A refresh that completes after
// a newer one has started is discarded, and a failed refresh leaves the last
// good snapshot in place.
type SnapshotLoader struct {
	repo adapter.LedgerRepository
	now  func() time.Time

	mu          sync.Mutex
	started     uint64
	invalidated uint64
	current     *entity.Snapshot
	stale       bool
}

// NewSnapshotLoader creates a new SnapshotLoader instance.
func NewSnapshotLoader(repo adapter.LedgerRepository) *SnapshotLoader {
	return &SnapshotLoader{
		repo: repo,
		now:  time.Now,
	}
}

// Current returns the loaded snapshot, refreshing first when none is loaded
// or the last one was invalidated.
func (l *SnapshotLoader) Current(ctx context.Context) (*entity.Snapshot, error) {
	l.mu.Lock()
	current, stale := l.current, l.stale
	l.mu.Unlock()

	if current != nil && !stale {
		return current, nil
	}
	return l.Refresh(ctx)
}

// Last returns the last applied snapshot without fetching, or nil.
func (l *SnapshotLoader) Last() *entity.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Invalidate marks the current snapshot as outdated. The next Current call refreshes.
func (l *SnapshotLoader) Invalidate() {
	l.mu.Lock()
	l.invalidated++
	l.stale = true
	l.mu.Unlock()
}

// Refresh fetches transactions and budget limits concurrently and applies the
// result unless a newer refresh started in the meantime. An invalidation that
// arrives while the fetch is in flight keeps the applied snapshot stale.
func (l *SnapshotLoader) Refresh(ctx context.Context) (*entity.Snapshot, error) {
	l.mu.Lock()
	l.started++
	generation := l.started
	invalidated := l.invalidated
	l.mu.Unlock()

	var (
		transactions []entity.Transaction
		limits       []entity.BudgetLimit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = l.repo.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		limits, err = l.repo.ListBudgetLimits(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Warn("Snapshot refresh failed, keeping last snapshot",
			"generation", generation,
			"error", err,
		)
		return nil, fmt.Errorf("failed to refresh snapshot: %w", err)
	}

	fresh := &entity.Snapshot{
		Version:      generation,
		Transactions: transactions,
		BudgetLimits: limits,
		FetchedAt:    l.now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if generation != l.started {
		slog.Debug("Discarding superseded snapshot refresh",
			"generation", generation,
			"latest", l.started,
		)
		if l.current != nil {
			return l.current, nil
		}
		return fresh, nil
	}

	l.current = fresh
	l.stale = l.invalidated != invalidated

	slog.Info("Snapshot refreshed",
		"version", fresh.Version,
		"transactions", len(transactions),
		"budget_limits", len(limits),
	)

	return fresh, nil
}
