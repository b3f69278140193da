// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface on top of gorm.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// ListTransactions retrieves every non-deleted transaction in insertion order.
func (r *ledgerRepository) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	var models []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, domainerror.NewFetchError("failed to list transactions", result.Error)
	}

	transactions := make([]entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}

// ListBudgetLimits retrieves every configured budget limit.
func (r *ledgerRepository) ListBudgetLimits(ctx context.Context) ([]entity.BudgetLimit, error) {
	var models []model.BudgetLimitModel
	result := r.db.WithContext(ctx).Order("category ASC").Find(&models)
	if result.Error != nil {
		return nil, domainerror.NewFetchError("failed to list budget limits", result.Error)
	}

	limits := make([]entity.BudgetLimit, len(models))
	for i := range models {
		limits[i] = models[i].ToEntity()
	}
	return limits, nil
}

// CreateTransaction inserts a transaction, assigning an ID when it has none.
func (r *ledgerRepository) CreateTransaction(ctx context.Context, tx entity.Transaction) (*entity.Transaction, error) {
	if !tx.HasID() {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	m := model.TransactionFromEntity(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, domainerror.NewWriteError("failed to create transaction", err)
	}

	created := m.ToEntity()
	return &created, nil
}

// DeleteTransaction soft-deletes a transaction by ID.
func (r *ledgerRepository) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return domainerror.NewWriteError("failed to delete transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// UpsertBudgetLimit inserts the limit for a category or replaces the existing one.
func (r *ledgerRepository) UpsertBudgetLimit(ctx context.Context, limit entity.BudgetLimit) (*entity.BudgetLimit, error) {
	now := time.Now().UTC()
	if limit.ID == uuid.Nil {
		limit.ID = uuid.New()
	}
	limit.UpdatedAt = now

	m := model.BudgetLimitFromEntity(limit)
	m.CreatedAt = now

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_limit", "updated_at"}),
	}).Create(m)
	if result.Error != nil {
		return nil, domainerror.NewWriteError("failed to upsert budget limit", result.Error)
	}

	// On conflict the row keeps its original ID, so read it back.
	var stored model.BudgetLimitModel
	if err := r.db.WithContext(ctx).Where("category = ?", limit.Category).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewWriteError("budget limit vanished after upsert", err)
		}
		return nil, domainerror.NewWriteError("failed to read back budget limit", err)
	}

	saved := stored.ToEntity()
	return &saved, nil
}
