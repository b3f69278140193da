// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// LedgerRepository is the persistence collaborator holding transactions and
// budget limits. Reads fail with a fetch error and writes with a write error
// (see domainerror.LedgerError); implementations never retry.
type LedgerRepository interface {
	// ListTransactions returns every transaction in the ledger.
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)

	// ListBudgetLimits returns every configured budget limit.
	ListBudgetLimits(ctx context.Context) ([]entity.BudgetLimit, error)

	// CreateTransaction persists a new transaction and returns it with its assigned ID.
	CreateTransaction(ctx context.Context, tx entity.Transaction) (*entity.Transaction, error)

	// DeleteTransaction removes a transaction. Returns domainerror.ErrTransactionNotFound
	// when no transaction has the given ID.
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	// UpsertBudgetLimit creates or replaces the limit of limit.Category.
	UpsertBudgetLimit(ctx context.Context, limit entity.BudgetLimit) (*entity.BudgetLimit, error)
}
