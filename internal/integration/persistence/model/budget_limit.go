package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BudgetLimitModel represents the budget_limits table. One row per category.
type BudgetLimitModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category     string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetLimitModel.
func (BudgetLimitModel) TableName() string {
	return "budget_limits"
}

// ToEntity converts a BudgetLimitModel to a domain BudgetLimit entity.
func (m *BudgetLimitModel) ToEntity() entity.BudgetLimit {
	return entity.BudgetLimit{
		ID:           m.ID,
		Category:     m.Category,
		MonthlyLimit: m.MonthlyLimit,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BudgetLimitFromEntity converts a domain BudgetLimit entity to a BudgetLimitModel.
func BudgetLimitFromEntity(l entity.BudgetLimit) *BudgetLimitModel {
	return &BudgetLimitModel{
		ID:           l.ID,
		Category:     l.Category,
		MonthlyLimit: l.MonthlyLimit,
		UpdatedAt:    l.UpdatedAt,
	}
}

// All returns every model managed by the ledger schema, in migration order.
func All() []any {
	return []any{&TransactionModel{}, &BudgetLimitModel{}}
}
